package auth

import (
	"encoding/json"
	"errors"
)

// Credentials identify the caller to the BlueKing API gateway in front of DBM.
type Credentials struct {
	AppCode     string `json:"bk_app_code,omitempty"`
	AppSecret   string `json:"bk_app_secret,omitempty"`
	Username    string `json:"bk_username,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

func NewCredentials(appCode, appSecret, username string) (*Credentials, error) {
	creds := &Credentials{
		AppCode:   appCode,
		AppSecret: appSecret,
		Username:  username,
	}
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return creds, nil
}

func (c *Credentials) Validate() error {
	if c.AppCode != "" && c.AppSecret == "" {
		return errors.New("bk_app_secret is required when bk_app_code is set")
	}
	if c.AppCode == "" && c.AppSecret != "" {
		return errors.New("bk_app_code is required when bk_app_secret is set")
	}
	return nil
}

// Empty reports whether there is nothing to send.
func (c *Credentials) Empty() bool {
	return c == nil || (c.AppCode == "" && c.Username == "" && c.AccessToken == "")
}

// Header renders the value of the X-Bkapi-Authorization header.
func (c *Credentials) Header() (string, error) {
	raw, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

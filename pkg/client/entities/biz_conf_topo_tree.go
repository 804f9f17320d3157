package entities

import "fmt"

type BizConfTopoTreeExtra struct {
	Domain string `json:"domain"`
}

// BizConfTopoTree is a node of the business resource tree (biz > module > cluster).
type BizConfTopoTree struct {
	ID            int                  `json:"id"`
	Name          string               `json:"name"`
	ObjID         string               `json:"obj_id"`
	ObjName       string               `json:"obj_name"`
	InstanceCount int                  `json:"instance_count"`
	Extra         BizConfTopoTreeExtra `json:"extra"`
	Children      []BizConfTopoTree    `json:"children"`
}

// Key identifies the node across object types, e.g. "module-12".
func (n BizConfTopoTree) Key() string {
	return fmt.Sprintf("%s-%d", n.ObjID, n.ID)
}

// Walk visits the node and its descendants depth first. Returning false from
// fn skips the children of that node.
func (n BizConfTopoTree) Walk(fn func(node BizConfTopoTree, parent string, depth int) bool) {
	n.walk(fn, "", 0)
}

func (n BizConfTopoTree) walk(fn func(BizConfTopoTree, string, int) bool, parent string, depth int) {
	if !fn(n, parent, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, n.Key(), depth+1)
	}
}

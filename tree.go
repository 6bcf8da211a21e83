package main

import (
	"path/filepath"
	"strings"
)

// treeNode is one entry in the directory tree. Children keep insertion
// order so "last sibling" is purely positional; no sorting is ever applied,
// which makes the rendered tree a direct function of discovery order.
type treeNode struct {
	name     string
	children []*treeNode
	index    map[string]*treeNode
}

func newTreeNode(name string) *treeNode {
	return &treeNode{name: name, index: make(map[string]*treeNode)}
}

// child returns the named child, creating and appending it if absent.
func (n *treeNode) child(name string) *treeNode {
	if c, ok := n.index[name]; ok {
		return c
	}
	c := newTreeNode(name)
	n.children = append(n.children, c)
	n.index[name] = c
	return c
}

// buildTree folds the full discovered path list (text and non-text alike)
// into a nested tree, splitting each path on "/" and inserting segments in
// the order the enumerator produced them.
func buildTree(paths []string) *treeNode {
	root := newTreeNode("")
	for _, p := range paths {
		node := root
		for _, segment := range strings.Split(filepath.ToSlash(p), "/") {
			if segment == "" {
				continue
			}
			node = node.child(segment)
		}
	}
	return root
}

// renderTree emits one newline-terminated line per node in pre-order.
// Nodes with children get a trailing "/", leaves none.
func renderTree(root *treeNode) string {
	var b strings.Builder
	renderChildren(&b, root.children, "")
	return b.String()
}

func renderChildren(b *strings.Builder, children []*treeNode, prefix string) {
	for i, node := range children {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(children)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		b.WriteString(prefix)
		b.WriteString(connector)
		b.WriteString(node.name)
		if len(node.children) > 0 {
			b.WriteString("/")
		}
		b.WriteString("\n")

		if len(node.children) > 0 {
			renderChildren(b, node.children, childPrefix)
		}
	}
}

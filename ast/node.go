package ast

type NodeType int

const (
	NodeCreateTable NodeType = iota
	NodeColumn
	NodeTable
	NodeValue
	NodeCast
)

type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}

package sortable

// nodeIDCounter is a plain counter (no atomic; the scene is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene element. A single flat struct is used for
// every kind of node; Tag and classes give it the identity selectors match on.
type Node struct {
	// Identity
	ID      uint32
	Name    string
	Tag     string
	classes []string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Box model. Width and Height are the intrinsic size of a leaf; nodes
	// with a Layout derive their size from their children.
	X, Y        float64
	Width       float64
	Height      float64
	Gap         float64
	Layout      Layout
	MinHeight   float64
	FrozenWidth float64

	// Inline style
	Position      Position
	Left, Top     float64
	TranslateY    float64
	Transition    float32
	ZIndex        int
	PointerEvents bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Rendering
	Color Color
	Label string

	// Metadata
	UserData any
	EntityID uint32

	// Computed by the layout pass (document coordinates, without TranslateY).
	box      Rect
	colWidth []float64

	translate *transition
	disposed  bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Visible = true
	n.Interactable = true
	n.PointerEvents = true
}

// NewContainer creates a node that stacks its children vertically.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Tag: "div", Layout: LayoutStack}
	nodeDefaults(n)
	return n
}

// NewBox creates a leaf node of the given tag and intrinsic size.
func NewBox(name, tag string, width, height float64) *Node {
	n := &Node{Name: name, Tag: tag, Width: width, Height: height, Color: ColorWhite}
	nodeDefaults(n)
	return n
}

// NewTable creates a table node. Its children are expected to be rows
// (see NewRow); cells in the same column share the widest in-flow width.
func NewTable(name string) *Node {
	n := &Node{Name: name, Tag: "table", Layout: LayoutTable}
	nodeDefaults(n)
	return n
}

// NewRow creates a table row whose children are laid out left to right.
func NewRow(name string) *Node {
	n := &Node{Name: name, Tag: "tr", Layout: LayoutRow}
	nodeDefaults(n)
	return n
}

// --- Classes ---

// AddClass adds a class name. Adding an existing class is a no-op.
func (n *Node) AddClass(class string) {
	if n.HasClass(class) {
		return
	}
	n.classes = append(n.classes, class)
}

// RemoveClass removes a class name if present.
func (n *Node) RemoveClass(class string) {
	for i, c := range n.classes {
		if c == class {
			n.classes = append(n.classes[:i], n.classes[i+1:]...)
			return
		}
	}
}

// HasClass reports whether the node carries the class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.classes {
		if c == class {
			return true
		}
	}
	return false
}

// Classes returns the node's class list. The returned slice MUST NOT be mutated.
func (n *Node) Classes() []string {
	return n.classes
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	n.AddChildAt(child, -1)
}

// AddChildAt inserts child at the given index. An index of -1 appends.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("sortable: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("sortable: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index == -1 {
		index = len(n.children)
	}
	if index < 0 || index > len(n.children) {
		panic("sortable: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	if globalDebug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(n)
	}
}

// InsertBefore inserts child immediately before ref among n's children.
// A nil ref appends. Panics if ref is not a child of n.
func (n *Node) InsertBefore(child, ref *Node) {
	if ref == nil {
		n.AddChild(child)
		return
	}
	if ref.Parent != n {
		panic("sortable: reference node is not a child of this node")
	}
	if child == ref {
		return
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent = nil
	}
	n.AddChildAt(child, n.IndexOf(ref))
}

// InsertAfter inserts child immediately after ref among n's children.
// Panics if ref is not a child of n.
func (n *Node) InsertAfter(child, ref *Node) {
	if ref == nil || ref.Parent != n {
		panic("sortable: reference node is not a child of this node")
	}
	if child == ref {
		return
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
		child.Parent = nil
	}
	n.AddChildAt(child, n.IndexOf(ref)+1)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sortable: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// IndexOf returns the index of child among n's children, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// NextSibling returns the node following n in its parent, or nil.
func (n *Node) NextSibling() *Node {
	if n.Parent == nil {
		return nil
	}
	i := n.Parent.IndexOf(n)
	if i < 0 || i+1 >= len(n.Parent.children) {
		return nil
	}
	return n.Parent.children[i+1]
}

// SetChildIndex moves child to a new index among its siblings.
func (n *Node) SetChildIndex(child *Node, index int) {
	if child.Parent != n {
		panic("sortable: child's parent is not this node")
	}
	nc := len(n.children)
	if index < 0 || index >= nc {
		panic("sortable: child index out of range")
	}
	oldIndex := n.IndexOf(child)
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.colWidth = nil
	n.translate = nil
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

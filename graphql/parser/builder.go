package parser

// frame is a node under construction.
type frame struct {
	node *Node
}

// builder assembles the tree from a stack of open frames. Frames close in
// LIFO order; a closed frame becomes a child of the frame below it, or the
// root when the stack empties.
type builder struct {
	stack []*frame
	root  *Node
}

func (b *builder) top() *frame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// push opens a node. Until it gets a child its span is zero-width at start.
func (b *builder) push(kind SyntaxKind, start Position) *frame {
	f := &frame{node: &Node{Kind: kind, Span: Span{Start: start, End: start}}}
	b.stack = append(b.stack, f)
	return f
}

func (b *builder) pop() {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	if parent := b.top(); parent != nil {
		parent.node.AddChild(f.node)
	} else {
		b.root = f.node
	}
}

func (b *builder) token(kind SyntaxKind, tok *Token) {
	parent := b.top()
	if parent == nil {
		return
	}
	parent.node.AddChild(&Node{Kind: kind, Span: tok.Span, Token: tok})
}

func (b *builder) indexOf(f *frame) int {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i] == f {
			return i
		}
	}
	return -1
}

// Guard is the handle for an open node. Finish closes it; calling Finish
// again is a no-op, so rules can both defer Finish and call it early.
type Guard struct {
	b     *builder
	frame *frame
}

// Finish closes the node, first closing any nodes opened after it that are
// still open.
func (g *Guard) Finish() {
	if g.frame == nil {
		return
	}
	idx := g.b.indexOf(g.frame)
	g.frame = nil
	if idx < 0 {
		return
	}
	for len(g.b.stack) > idx {
		g.b.pop()
	}
}

// startNode opens a node of the given kind. Subsequent bumps and nodes
// attach to it until its guard is finished.
func (p *Parser) startNode(kind SyntaxKind) *Guard {
	f := p.builder.push(kind, p.position())
	return &Guard{b: &p.builder, frame: f}
}

// checkpoint marks the current end of the open node so that later siblings
// can be wrapped retroactively with startNodeAt.
type checkpoint struct {
	frame *frame
	n     int
}

func (p *Parser) checkpoint() checkpoint {
	f := p.builder.top()
	if f == nil {
		return checkpoint{}
	}
	return checkpoint{frame: f, n: len(f.node.Children)}
}

// startNodeAt opens a node that adopts every child added to the open node
// since cp was taken.
func (p *Parser) startNodeAt(cp checkpoint, kind SyntaxKind) *Guard {
	parent := p.builder.top()
	if parent == nil || parent != cp.frame || cp.n > len(parent.node.Children) {
		return p.startNode(kind)
	}
	adopted := parent.node.truncate(cp.n)

	f := p.builder.push(kind, p.position())
	for _, child := range adopted {
		f.node.AddChild(child)
	}
	return &Guard{b: &p.builder, frame: f}
}

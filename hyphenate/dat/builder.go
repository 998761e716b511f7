package dat

import (
	"fmt"
	"sort"
)

type buildNode struct {
	state    uint32
	value    int32 // biased, 0 = none
	children map[uint16]*buildNode
}

// Builder collects keys and compiles them into a DAT.
type Builder struct {
	root  *buildNode
	sigma uint16
	keys  int
}

// NewBuilder creates a builder for symbols in [1..sigma].
func NewBuilder(sigma uint16) *Builder {
	return &Builder{
		root:  &buildNode{children: make(map[uint16]*buildNode)},
		sigma: sigma,
	}
}

// Len returns the number of keys inserted so far.
func (b *Builder) Len() int { return b.keys }

// Insert adds key with a non-negative value. A later insert of the same key
// replaces the value.
func (b *Builder) Insert(key []uint16, value int) error {
	if b.root == nil {
		return fmt.Errorf("builder already frozen")
	}
	if len(key) == 0 {
		return fmt.Errorf("empty key")
	}
	if value < 0 {
		return fmt.Errorf("negative value: %d", value)
	}
	n := b.root
	for _, c := range key {
		if c == 0 || c > b.sigma {
			return fmt.Errorf("symbol out of alphabet: %d", c)
		}
		child := n.children[c]
		if child == nil {
			child = &buildNode{children: make(map[uint16]*buildNode)}
			n.children[c] = child
		}
		n = child
	}
	if n.value == 0 {
		b.keys++
	}
	n.value = int32(value) + 1
	return nil
}

// Freeze compiles the collected keys into a double-array trie. The builder
// cannot be used afterwards.
func (b *Builder) Freeze() *DAT {
	d := &DAT{Root: 1, Sigma: b.sigma}
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Value = make([]int32, int(d.Root)+1)
	b.root.state = d.Root
	d.Value[d.Root] = b.root.value
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels)
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			d.Value[t] = child.value
			queue = append(queue, child)
		}
	}
	b.root = nil
	return d
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

func findBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	d.Value = append(d.Value, make([]int32, grow)...)
}

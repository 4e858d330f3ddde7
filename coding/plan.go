// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "sync"

// A Plan describes the layout of a QR code of a specific version:
// its function patterns and reserved areas.
type Plan struct {
	Version Version // QR code version
	Size    int     // number of modules on a side

	skel *Grid // function patterns, read-only
}

// Pre-allocated Plans.  A Plan is created the first time a version is
// used and is never modified afterwards.
var plans [MaxVersion + 1]struct {
	once sync.Once
	p    *Plan
}

// NewPlan returns the Plan for version v.
func NewPlan(v Version) (*Plan, error) {
	if !v.Valid() {
		return nil, ErrVersion
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// vplan creates a Plan for the given version.
func vplan(v Version) *Plan {
	siz := v.Size()
	g := NewGrid(siz)
	g.drawFunctionPatterns(v)
	return &Plan{Version: v, Size: siz, skel: g}
}

// Grid returns a new grid holding the function patterns of p, with
// format and version information areas reserved and all other
// modules unset.
func (p *Plan) Grid() *Grid { return p.skel.Clone() }

// DataModules returns the number of modules available for data in p.
func (p *Plan) DataModules() int {
	n := 0
	for _, m := range p.skel.mod {
		if m&modFunction == 0 {
			n++
		}
	}
	return n
}

package placer

import (
	"fmt"
	"sort"

	"github.com/sarchlab/zeonplace/container"
	"github.com/sarchlab/zeonplace/db"
	"github.com/sarchlab/zeonplace/geom"
	"github.com/sarchlab/zeonplace/zplog"
)

// netPin is one non-power/ground pin connection belonging to a net.
type netPin struct {
	Instance container.Key
	Offset   geom.Coord64 // pin offset within the cell, in R0 orientation
}

// netInfo is the placer's view of one net: its constituent pins, with
// power/ground pins already filtered out.
type netInfo struct {
	Name string
	Pins []netPin
}

// instanceInfo is the placer's per-instance bookkeeping.
type instanceInfo struct {
	Key      container.Key
	SizeX    int64
	SizeY    int64
	Fixed    bool
	Position geom.Coord64 // entry position (used as fixed pseudo-terminal or initial guess)
}

// Snapshot is a self-contained view of one module's netlist suitable for
// placement: movable instances, fixed instances, and the nets
// connecting them, with pin offsets already resolved from the cell
// library.
type Snapshot struct {
	Movable []instanceInfo
	Fixed   map[container.Key]instanceInfo
	Nets    []netInfo

	indexOf map[container.Key]int // movable key -> index into Movable
}

// BuildSnapshot walks top's netlist and the design's cell library to
// build a placer Snapshot. It skips nets with fewer than two non-PG
// connections (logging a warning) and power/ground pins entirely.
func BuildSnapshot(design *db.Design, top *db.Cell, log *zplog.Logger) (*Snapshot, error) {
	if top.Netlist == nil {
		return nil, fmt.Errorf("placer: top module %q is a black box", top.Name)
	}

	snap := &Snapshot{
		Fixed:   make(map[container.Key]instanceInfo),
		indexOf: make(map[container.Key]int),
	}

	var keys []container.Key
	top.Netlist.Instances.Each(func(key container.Key, _ *db.Instance) bool {
		keys = append(keys, key)
		return true
	})
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		ins, err := top.Netlist.Instances.AtKey(key)
		if err != nil || ins.Status == db.Ignore {
			continue
		}
		cell, err := design.CellLib.Cells.AtKey(ins.Cell)
		var sx, sy int64
		if err == nil {
			sx, sy = cell.SizeX, cell.SizeY
		}
		info := instanceInfo{Key: key, SizeX: sx, SizeY: sy, Position: ins.Position}
		if ins.IsFixed() {
			info.Fixed = true
			snap.Fixed[key] = info
		} else {
			snap.indexOf[key] = len(snap.Movable)
			snap.Movable = append(snap.Movable, info)
		}
	}

	top.Netlist.Nets.Each(func(_ container.Key, n *db.Net) bool {
		pins := make([]netPin, 0, len(n.Connections))
		for _, conn := range n.Connections {
			ins, err := top.Netlist.Instances.AtKey(conn.Instance)
			if err != nil {
				continue
			}
			cell, err := design.CellLib.Cells.AtKey(ins.Cell)
			if err != nil || conn.PinIndex >= len(cell.Pins) {
				continue
			}
			pin := cell.Pins[conn.PinIndex]
			if pin.IsPGPin() {
				continue
			}
			pins = append(pins, netPin{Instance: conn.Instance, Offset: pin.Offset})
		}
		if len(pins) < 2 {
			if log != nil {
				log.Warningf("placer: net %q has fewer than 2 non-PG pins, skipping", n.Name)
			}
			return true
		}
		snap.Nets = append(snap.Nets, netInfo{Name: n.Name, Pins: pins})
		return true
	})

	return snap, nil
}

// MovableIndex returns the index of key within Movable, or ok=false if
// key is not a movable instance tracked by this snapshot.
func (s *Snapshot) MovableIndex(key container.Key) (int, bool) {
	i, ok := s.indexOf[key]
	return i, ok
}

// TotalMovableArea returns the sum of movable instance footprints in nm^2.
func (s *Snapshot) TotalMovableArea() int64 {
	var total int64
	for _, m := range s.Movable {
		total += m.SizeX * m.SizeY
	}
	return total
}

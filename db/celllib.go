package db

import "github.com/sarchlab/zeonplace/container"

// CellLib is the named, keyed store of every Cell (leaf or Module)
// known to a Design. Clear always re-creates the four built-in
// pseudo-cells used to realize top-level ports and Verilog assign
// statements.
type CellLib struct {
	Cells *container.Container[*Cell]
}

// NewCellLib creates a CellLib with the four pseudo-cells already present.
func NewCellLib() *CellLib {
	lib := &CellLib{Cells: container.New[*Cell]()}
	lib.Clear()
	return lib
}

// Clear empties the library and re-creates the four pseudo-cells.
func (lib *CellLib) Clear() {
	lib.Cells.ClearAll()

	mustAdd := func(c *Cell) {
		if _, err := lib.Cells.Add(c.Name, c); err != nil {
			panic("db: bootstrapping pseudo-cell " + c.Name + ": " + err.Error())
		}
	}

	netcon := NewCell(NetconCellName)
	_ = netcon.AddPin(PinInfo{Name: "A", Direction: Input})
	_ = netcon.AddPin(PinInfo{Name: "Y", Direction: Output})
	mustAdd(netcon)

	inpin := NewCell(InPinCellName)
	_ = inpin.AddPin(PinInfo{Name: "Y", Direction: Output})
	mustAdd(inpin)

	outpin := NewCell(OutPinCellName)
	_ = outpin.AddPin(PinInfo{Name: "A", Direction: Input})
	mustAdd(outpin)

	iopin := NewCell(IOPinCellName)
	_ = iopin.AddPin(PinInfo{Name: "IO", Direction: IO})
	mustAdd(iopin)
}

// Add registers a new Cell under its own name.
func (lib *CellLib) Add(c *Cell) (container.Key, error) {
	return lib.Cells.Add(c.Name, c)
}

package db

import (
	"fmt"

	"github.com/sarchlab/zeonplace/container"
)

// Netlist owns a set of instances and nets for one Module.
type Netlist struct {
	Instances *container.Container[*Instance]
	Nets      *container.Container[*Net]
}

// NewNetlist creates an empty netlist.
func NewNetlist() *Netlist {
	return &Netlist{
		Instances: container.New[*Instance](),
		Nets:      container.New[*Net](),
	}
}

// AddInstance registers ins under its own name.
func (nl *Netlist) AddInstance(ins *Instance) (container.Key, error) {
	if ins.Name == "" {
		return 0, fmt.Errorf("db: instance name must not be empty")
	}
	return nl.Instances.Add(ins.Name, ins)
}

// AddNet registers n under its own name.
func (nl *Netlist) AddNet(n *Net) (container.Key, error) {
	return nl.Nets.Add(n.Name, n)
}

// Connect wires pin pinIndex of instance insKey to net netKey. It is
// idempotent: calling it twice with the same arguments has the same
// effect as calling it once. It fails if either handle is invalid, or if
// pinIndex is out of range for the instance's pin-net table.
func (nl *Netlist) Connect(insKey container.Key, pinIndex int, netKey container.Key) error {
	ins, err := nl.Instances.AtKey(insKey)
	if err != nil {
		return fmt.Errorf("db: connect: instance: %w", err)
	}
	n, err := nl.Nets.AtKey(netKey)
	if err != nil {
		return fmt.Errorf("db: connect: net: %w", err)
	}
	if pinIndex < 0 || pinIndex >= len(ins.PinNets) {
		return fmt.Errorf("db: connect: pin index %d out of range for instance %q", pinIndex, ins.Name)
	}

	ins.PinNets[pinIndex] = netKey

	conn := Connection{Instance: insKey, PinIndex: pinIndex}
	if !n.hasConnection(conn) {
		n.Connections = append(n.Connections, conn)
	}

	return nil
}

// Disconnect removes the wiring of pin pinIndex on insKey, if any,
// dropping the corresponding connection from whichever net it pointed to.
func (nl *Netlist) Disconnect(insKey container.Key, pinIndex int) error {
	ins, err := nl.Instances.AtKey(insKey)
	if err != nil {
		return fmt.Errorf("db: disconnect: instance: %w", err)
	}
	if pinIndex < 0 || pinIndex >= len(ins.PinNets) {
		return fmt.Errorf("db: disconnect: pin index %d out of range for instance %q", pinIndex, ins.Name)
	}

	netKey := ins.PinNets[pinIndex]
	ins.PinNets[pinIndex] = container.NoKey
	if netKey == container.NoKey {
		return nil
	}

	n, err := nl.Nets.AtKey(netKey)
	if err != nil {
		return nil // net already gone; instance side is already cleared
	}
	conn := Connection{Instance: insKey, PinIndex: pinIndex}
	for i, existing := range n.Connections {
		if existing == conn {
			n.Connections = append(n.Connections[:i], n.Connections[i+1:]...)
			break
		}
	}
	return nil
}

package merkletree

import (
	"fmt"
	"io"

	"github.com/shieldcoin/shieldd/chaincfg/chainhash"
)

// Slot-presence markers for the serialised tree witness.
const (
	slotAbsent  = 0x00
	slotPresent = 0x01
)

func writeSlot(w io.Writer, slot *chainhash.Hash) error {
	if slot == nil {
		_, err := w.Write([]byte{slotAbsent})
		return err
	}
	if _, err := w.Write([]byte{slotPresent}); err != nil {
		return err
	}
	_, err := w.Write(slot[:])
	return err
}

func readSlot(r io.Reader) (*chainhash.Hash, error) {
	var flag [1]byte
	if _, err := io.ReadFull(r, flag[:]); err != nil {
		return nil, err
	}
	switch flag[0] {
	case slotAbsent:
		return nil, nil
	case slotPresent:
		var h chainhash.Hash
		if _, err := io.ReadFull(r, h[:]); err != nil {
			return nil, err
		}
		return &h, nil
	default:
		return nil, fmt.Errorf("merkletree: invalid slot marker 0x%02x", flag[0])
	}
}

// Serialize writes the tree witness as left | right | parent-list, each
// slot a presence byte followed by the 32-byte hash when present. An
// empty tree serialises as Depth+1 absent markers.
func (t *Tree) Serialize(w io.Writer) error {
	if err := writeSlot(w, t.left); err != nil {
		return err
	}
	if err := writeSlot(w, t.right); err != nil {
		return err
	}
	for _, parent := range t.parents {
		if err := writeSlot(w, parent); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads a tree witness previously written by Serialize into
// t, replacing its slots. The tree's Depth, Combine, and EmptyRoot are
// left untouched: the caller constructs the right instantiation
// (NewSprout/NewSapling) first and fills it from storage.
func (t *Tree) Deserialize(r io.Reader) error {
	left, err := readSlot(r)
	if err != nil {
		return err
	}
	right, err := readSlot(r)
	if err != nil {
		return err
	}
	parents := make([]*chainhash.Hash, t.Depth-1)
	for i := range parents {
		if parents[i], err = readSlot(r); err != nil {
			return err
		}
	}
	t.left, t.right, t.parents = left, right, parents
	return nil
}

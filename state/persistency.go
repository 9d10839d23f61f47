package state

import (
	"encoding/json"
	"os"
)

// KeeperState is what the keeper remembers across restarts
type KeeperState struct {
	LastHeight uint64 `json:"lastHeight"`
	// Performed maps an upkeep id to the last block it was performed in
	Performed map[string]uint64 `json:"performed"`
}

type ChainPersistency struct {
	location string
}

// NewChainPersistency creates new ChainPersistency object and returns a reference to it.
func NewChainPersistency(location string) *ChainPersistency {
	return &ChainPersistency{
		location: location,
	}
}

func (b *ChainPersistency) SaveHeight(height uint64) error {
	keeperState, err := b.GetState()
	if err != nil {
		return err
	}

	keeperState.LastHeight = height
	return b.Save(keeperState)
}

func (b *ChainPersistency) GetHeight() (uint64, error) {
	keeperState, err := b.GetState()
	if err != nil {
		return 0, err
	}
	return keeperState.LastHeight, nil
}

// GetState loads the state, a missing file is an empty state
func (b *ChainPersistency) GetState() (*KeeperState, error) {
	keeperState := KeeperState{Performed: make(map[string]uint64)}
	file, err := os.ReadFile(b.location)
	if os.IsNotExist(err) {
		return &keeperState, nil
	}
	if err != nil {
		return nil, err
	}
	err = json.Unmarshal(file, &keeperState)
	if err != nil {
		return nil, err
	}
	if keeperState.Performed == nil {
		keeperState.Performed = make(map[string]uint64)
	}

	return &keeperState, nil
}

func (b *ChainPersistency) Save(keeperState *KeeperState) error {
	updatedPersistency, err := json.Marshal(keeperState)
	if err != nil {
		return err
	}

	return os.WriteFile(b.location, updatedPersistency, 0o644)
}

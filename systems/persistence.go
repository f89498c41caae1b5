package systems

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/automoto/tileworld/logger"
	"github.com/automoto/tileworld/tilemap"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

// ErrNoPersistence is returned by slot operations when InitPersistence has not
// succeeded.
var ErrNoPersistence = errors.New("persistence is not initialized")

// itemStore is the part of *gdata.Manager the save slots use.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var slotStore itemStore

// InitPersistence opens the gdata manager that stores level slots in the
// user's data directory.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tileworld",
	})
	if err != nil {
		logger.For("persistence").WithError(err).Warn("could not initialize persistence")
		return err
	}
	slotStore = m
	return nil
}

// SaveLevelSlot stores tm under name in the canonical map JSON.
func SaveLevelSlot(name string, tm *tilemap.Tilemap) error {
	if slotStore == nil {
		return ErrNoPersistence
	}

	var buf bytes.Buffer
	if err := tm.Encode(&buf); err != nil {
		return fmt.Errorf("save slot %s: %w", name, err)
	}
	if err := slotStore.SaveItem(name, buf.Bytes()); err != nil {
		logger.For("persistence").WithError(err).WithField("slot", name).Warn("could not save level slot")
		return fmt.Errorf("save slot %s: %w", name, err)
	}

	logger.For("persistence").WithFields(logrus.Fields{
		"slot":  name,
		"tiles": tm.Len(),
		"bytes": buf.Len(),
	}).Debug("saved level slot")
	return nil
}

// LoadLevelSlot reads the tilemap stored under name. A missing or malformed
// slot is a *tilemap.LoadError whose Path is "slot:<name>".
func LoadLevelSlot(name string) (*tilemap.Tilemap, error) {
	if slotStore == nil {
		return nil, ErrNoPersistence
	}

	source := "slot:" + name
	data, err := slotStore.LoadItem(name)
	if err != nil {
		return nil, &tilemap.LoadError{Path: source, Err: err}
	}
	if len(data) == 0 {
		return nil, &tilemap.LoadError{Path: source, Err: errors.New("slot is empty")}
	}

	tm := tilemap.New(0)
	if err := tm.Decode(bytes.NewReader(data)); err != nil {
		return nil, &tilemap.LoadError{Path: source, Err: err}
	}

	logger.For("persistence").WithFields(logrus.Fields{
		"slot":    name,
		"tiles":   tm.Len(),
		"offgrid": len(tm.Offgrid()),
	}).Info("loaded level slot")
	return tm, nil
}

// HasLevelSlot reports whether a non-empty slot named name exists.
func HasLevelSlot(name string) bool {
	if slotStore == nil {
		return false
	}
	data, err := slotStore.LoadItem(name)
	return err == nil && len(data) > 0
}

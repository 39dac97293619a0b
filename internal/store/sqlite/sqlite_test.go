package sqlite

import (
	"testing"

	"github.com/PickleRicc/deep-work-sub001/internal/store"
	"github.com/PickleRicc/deep-work-sub001/internal/store/storetest"
)

func TestSQLiteStore_Compliance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		db, err := OpenMemory()
		if err != nil {
			t.Fatalf("open memory db: %v", err)
		}
		t.Cleanup(func() { _ = db.Close() })
		if err := EnsureSchema(db); err != nil {
			t.Fatalf("ensure schema: %v", err)
		}
		return NewWithDB(db)
	})
}

package configs

import (
	"testing"
	"time"
)

func TestWaitForDB_SucceedsOnLiveStore(t *testing.T) {
	db := bootstrapTestDB(t)

	if err := WaitForDB(db, 1, 0); err != nil {
		t.Fatalf("WaitForDB on a live store: %v", err)
	}
}

// Opening the mysql handle must not dial the server: a store that is still
// starting is the wait loop's problem, not a fatal open error.
func TestConnectionDB_MySQLDefersConnectivityToWaitLoop(t *testing.T) {
	cfg := &Config{
		DBDriver: "mysql",
		DBHost:   "127.0.0.1",
		DBPort:   "1", // nothing listens here
		DBUser:   "root",
		DBName:   "riders_db",
	}

	if err := ConnectionDB(cfg); err != nil {
		t.Fatalf("open against a not-yet-listening store must succeed: %v", err)
	}

	// readiness is decided by the retry loop, which reports failure only
	// after its retries run out
	if err := WaitForDB(DB(), 2, time.Millisecond); err == nil {
		t.Error("expected WaitForDB to fail once retries are exhausted")
	}
}

func TestWaitForDB_ExhaustsRetries(t *testing.T) {
	db := bootstrapTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.Close()

	if err := WaitForDB(db, 2, time.Millisecond); err == nil {
		t.Error("expected an error once retries are exhausted")
	}
}

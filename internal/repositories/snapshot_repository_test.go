package repositories

import (
	"testing"

	"motoroutes/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSnapshotSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs(KeyCompletion, []byte(`{"1":true}`), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := SnapshotRepository{DB: db}
	if err := repo.Save(KeyCompletion, domain.CompletionState{1: true}); err != nil {
		t.Fatalf("save error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSnapshotLoadRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs(KeyItineraries).
		WillReturnRows(sqlmock.NewRows([]string{"data"}).
			AddRow([]byte(`[{"id":1,"kind":"Dia","places":["Santos"],"distance_km":120}]`)))

	repo := SnapshotRepository{DB: db}
	var items []domain.Itinerary
	if err := repo.Load(KeyItineraries, &items); err != nil {
		t.Fatalf("load error: %v", err)
	}
	if len(items) != 1 || items[0].ID != 1 || items[0].Places[0] != "Santos" {
		t.Fatalf("unexpected snapshot content: %+v", items)
	}
}

func TestSnapshotLoadMissingKeyIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT data FROM snapshots").
		WithArgs(KeyMedia).
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	repo := SnapshotRepository{DB: db}
	var media domain.MediaState
	err = repo.Load(KeyMedia, &media)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

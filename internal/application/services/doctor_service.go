package services

import (
	"context"
	"sync"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
)

// ProfileResult is the per-doctor outcome of a batched profile fetch. One
// unreachable profile does not fail the rest of the batch.
type ProfileResult struct {
	DoctorID int64
	Doctor   *entities.Doctor
	Err      error
}

// DoctorService reads the doctor directory. Profile fetches issued within
// the same frame are batched and run concurrently; the batch joins when all
// of them have settled.
type DoctorService struct {
	backend providers.ConsultBackend
	loader  *dataloader.Loader[int64, *entities.Doctor]
}

// NewDoctorService creates a new doctor directory service
func NewDoctorService(backend providers.ConsultBackend) *DoctorService {
	s := &DoctorService{backend: backend}
	// Snapshots must be fresh per fetch, so the loader batches but never
	// caches across calls.
	s.loader = dataloader.NewBatchedLoader(
		s.batchProfiles,
		dataloader.WithCache[int64, *entities.Doctor](&dataloader.NoCache[int64, *entities.Doctor]{}),
	)
	return s
}

// Profile fetches one doctor snapshot
func (s *DoctorService) Profile(ctx context.Context, doctorID int64) (*entities.Doctor, error) {
	return s.backend.GetDoctorProfile(ctx, doctorID)
}

// Search lists doctor snapshots for a specialization
func (s *DoctorService) Search(ctx context.Context, specialization string) ([]*entities.Doctor, error) {
	return s.backend.SearchDoctors(ctx, specialization)
}

// Profiles fetches several doctor snapshots at once and reports success or
// failure per doctor, in input order
func (s *DoctorService) Profiles(ctx context.Context, doctorIDs []int64) []ProfileResult {
	thunks := make([]dataloader.Thunk[*entities.Doctor], len(doctorIDs))
	for i, id := range doctorIDs {
		thunks[i] = s.loader.Load(ctx, id)
	}

	results := make([]ProfileResult, len(doctorIDs))
	for i, thunk := range thunks {
		doctor, err := thunk()
		results[i] = ProfileResult{
			DoctorID: doctorIDs[i],
			Doctor:   doctor,
			Err:      err,
		}
	}
	return results
}

// batchProfiles resolves one batch of profile fetches concurrently
func (s *DoctorService) batchProfiles(ctx context.Context, keys []int64) []*dataloader.Result[*entities.Doctor] {
	results := make([]*dataloader.Result[*entities.Doctor], len(keys))

	var wg sync.WaitGroup
	for i, id := range keys {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			doctor, err := s.backend.GetDoctorProfile(ctx, id)
			if err != nil {
				results[i] = &dataloader.Result[*entities.Doctor]{Error: err}
				return
			}
			results[i] = &dataloader.Result[*entities.Doctor]{Data: doctor}
		}(i, id)
	}
	wg.Wait()

	return results
}

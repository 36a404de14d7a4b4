package usecase

import (
	"context"
	"errors"
	"sync"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/domain/repository"
	"healthhub/pkg/apperror"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
)

var ErrGeolocationDenied = errors.New("location access was denied, reload the page to search again")

// FacilitySearch runs nearby facility searches. Once the page reports that
// geolocation was denied, searching stays disabled until the page mounts again.
type FacilitySearch struct {
	mu        sync.Mutex
	repo      repository.FacilityRepository
	validator *validator.CustomValidator
	log       *logrus.Logger

	denied  bool
	results []entity.Facility
	err     string
}

type FacilityView struct {
	Results           []entity.Facility
	GeolocationDenied bool
	Error             string
}

func NewFacilitySearch(repo repository.FacilityRepository, validator *validator.CustomValidator, log *logrus.Logger) *FacilitySearch {
	return &FacilitySearch{repo: repo, validator: validator, log: log, results: []entity.Facility{}}
}

// Mount is a page (re)load: it clears results and lifts a geolocation denial.
func (s *FacilitySearch) Mount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied = false
	s.results = []entity.Facility{}
	s.err = ""
}

// DenyGeolocation disables searching for the rest of this page lifetime.
func (s *FacilitySearch) DenyGeolocation() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.denied = true
	s.err = ErrGeolocationDenied.Error()
}

func (s *FacilitySearch) Search(ctx context.Context, req *dto.FacilitySearchRequest) ([]entity.Facility, error) {
	s.mu.Lock()
	denied := s.denied
	s.mu.Unlock()
	if denied {
		return nil, ErrGeolocationDenied
	}

	if err := s.validator.Validate(req); err != nil {
		s.setError(apperror.UserMessage(err))
		return nil, err
	}

	results, err := s.repo.Search(ctx, converter.SearchRequestToQuery(req))
	if err != nil {
		s.log.WithError(err).Warn("Facility search failed")
		s.setError(apperror.UserMessage(err))
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
	s.err = ""
	return results, nil
}

func (s *FacilitySearch) View() FacilityView {
	s.mu.Lock()
	defer s.mu.Unlock()
	results := make([]entity.Facility, len(s.results))
	copy(results, s.results)
	return FacilityView{Results: results, GeolocationDenied: s.denied, Error: s.err}
}

func (s *FacilitySearch) setError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

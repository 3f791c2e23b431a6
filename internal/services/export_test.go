package services

import "context"

func (s *Service) CalculateAndUpdateStats(ctx context.Context) error {
	return s.calculateAndUpdateStats(ctx)
}

package usecase

// coalesce returns the new value when provided, otherwise the existing one.
// Used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}

package service

import "errors"

// ErrInvalidTarget is returned when a score is requested for a non-positive
// target, which would otherwise divide by zero.
var ErrInvalidTarget = errors.New("target value must be greater than zero")

// Score derives a KPA score from target, achieved and weightage:
//
//	min((achieved/target) * weightage, weightage)
//
// The result never exceeds weightage. No floor is applied, so a negative
// achieved value produces a negative score; the create path validates inputs
// as non-negative before calling this.
func Score(target, achieved, weightage float64) (float64, error) {
	if target <= 0 {
		return 0, ErrInvalidTarget
	}
	score := (achieved / target) * weightage
	if score > weightage {
		score = weightage
	}
	return score, nil
}

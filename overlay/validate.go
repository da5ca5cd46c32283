package overlay

// validateFillRule checks that r is one of the four defined fill rules.
func validateFillRule(r FillRule) error {
	if r > Negative {
		return ErrInvalidFillRule
	}
	return nil
}

// validateOverlayRule checks that r is one of the seven defined overlay rules.
func validateOverlayRule(r OverlayRule) error {
	if r > RuleXor {
		return ErrInvalidOverlayRule
	}
	return nil
}

// validateSolverType checks that s is one of the defined solver types.
func validateSolverType(s SolverType) error {
	if s > SolverFrag {
		return ErrInvalidSolverType
	}
	return nil
}

// validatePredicateOp checks that op is one of the defined predicate operations.
func validatePredicateOp(op PredicateOp) error {
	if op > PredCovers {
		return ErrInvalidPredicateOp
	}
	return nil
}

// ParseFillRule maps a scene-file string to a FillRule, for internal/config.
func ParseFillRule(s string) (FillRule, error) {
	switch s {
	case "EvenOdd", "even-odd", "evenodd":
		return EvenOdd, nil
	case "NonZero", "non-zero", "nonzero":
		return NonZero, nil
	case "Positive", "positive":
		return Positive, nil
	case "Negative", "negative":
		return Negative, nil
	default:
		return 0, ErrInvalidFillRule
	}
}

// ParseOverlayRule maps a scene-file string to an OverlayRule, for internal/config.
func ParseOverlayRule(s string) (OverlayRule, error) {
	switch s {
	case "Subject", "subject":
		return RuleSubject, nil
	case "Clip", "clip":
		return RuleClip, nil
	case "Intersect", "intersect", "Intersection", "intersection":
		return RuleIntersect, nil
	case "Union", "union":
		return RuleUnion, nil
	case "Difference", "difference":
		return RuleDifference, nil
	case "InverseDifference", "inverse-difference":
		return RuleInverseDifference, nil
	case "Xor", "xor":
		return RuleXor, nil
	default:
		return 0, ErrInvalidOverlayRule
	}
}

// ParseSolverType maps a scene-file string to a SolverType, for internal/config.
func ParseSolverType(s string) (SolverType, error) {
	switch s {
	case "", "Auto", "auto":
		return SolverAuto, nil
	case "List", "list":
		return SolverList, nil
	case "Tree", "tree":
		return SolverTree, nil
	case "Frag", "frag":
		return SolverFrag, nil
	default:
		return 0, ErrInvalidSolverType
	}
}

package idconf

// ReadID decodes a single required ID parameter. The only possible
// failure is the one reported by the table's own Validate.
//
// The ID type cannot be inferred from the config type, so calls name
// it explicitly:
//
//	wire, err := idconf.ReadID[geo.WireID](cfg.Wire)
func ReadID[T any, C IDConfig[T]](cfg C) (T, error) {
	if err := cfg.Validate(); err != nil {
		var zero T
		return zero, err
	}
	return cfg.ID(), nil
}

// ReadOptionalID decodes an optional ID parameter, declared as a
// pointer field. It reports false with no error when the parameter was
// omitted.
func ReadOptionalID[T any, C IDConfig[T]](cfg *C) (T, bool, error) {
	if cfg == nil {
		var zero T
		return zero, false, nil
	}
	id, err := ReadID[T](*cfg)
	return id, err == nil, err
}

// ReadOptionalIDOr decodes an optional ID parameter, collapsing an
// omitted one into the given default.
func ReadOptionalIDOr[T any, C IDConfig[T]](cfg *C, def T) (T, error) {
	id, ok, err := ReadOptionalID[T](cfg)
	if err != nil {
		return id, err
	}
	if !ok {
		return def, nil
	}
	return id, nil
}

// ReadIDSequence decodes a homogeneous sequence of ID parameters,
// preserving their order. An empty sequence decodes to an empty,
// non-nil slice.
func ReadIDSequence[T any, C IDConfig[T]](cfgs []C) ([]T, error) {
	ids := make([]T, 0, len(cfgs))
	for i := range cfgs {
		id, err := ReadID[T](cfgs[i])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ReadOptionalIDSequence decodes an optional sequence of ID
// parameters, declared as a pointer-to-slice field. It reports false
// with no error when the sequence itself was omitted; an empty but
// present sequence reports true with a zero-length slice.
func ReadOptionalIDSequence[T any, C IDConfig[T]](cfgs *[]C) ([]T, bool, error) {
	if cfgs == nil {
		return nil, false, nil
	}
	ids, err := ReadIDSequence[T](*cfgs)
	return ids, err == nil, err
}

// ReadOptionalIDSequenceOr decodes an optional sequence of ID
// parameters, collapsing an omitted one into the given default.
func ReadOptionalIDSequenceOr[T any, C IDConfig[T]](cfgs *[]C, def []T) ([]T, error) {
	ids, ok, err := ReadOptionalIDSequence[T](cfgs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return def, nil
	}
	return ids, nil
}

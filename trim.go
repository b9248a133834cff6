package cloudinary

// VideoTrim is a time window in seconds. It can only be built through one of
// the Trim* constructors, so one or two of its offsets are always set. The
// offsets are passed through as given; end is not checked against start.
type VideoTrim struct {
	start    *float64
	end      *float64
	duration *float64
}

// TrimStartEnd keeps the media between start and end.
func TrimStartEnd(start, end float64) *VideoTrim {
	return &VideoTrim{start: &start, end: &end}
}

// TrimStartDuration keeps duration seconds from start.
func TrimStartDuration(start, duration float64) *VideoTrim {
	return &VideoTrim{start: &start, duration: &duration}
}

// TrimEndDuration keeps duration seconds ending at end.
func TrimEndDuration(end, duration float64) *VideoTrim {
	return &VideoTrim{end: &end, duration: &duration}
}

// TrimStart drops everything before start.
func TrimStart(start float64) *VideoTrim {
	return &VideoTrim{start: &start}
}

// TrimEnd drops everything after end.
func TrimEnd(end float64) *VideoTrim {
	return &VideoTrim{end: &end}
}

// TrimDuration keeps the first duration seconds.
func TrimDuration(duration float64) *VideoTrim {
	return &VideoTrim{duration: &duration}
}

// Start returns the start offset and whether it is set.
func (t *VideoTrim) Start() (float64, bool) {
	if t == nil {
		return 0, false
	}
	return deref(t.start)
}

// End returns the end offset and whether it is set.
func (t *VideoTrim) End() (float64, bool) {
	if t == nil {
		return 0, false
	}
	return deref(t.end)
}

// Duration returns the duration and whether it is set.
func (t *VideoTrim) Duration() (float64, bool) {
	if t == nil {
		return 0, false
	}
	return deref(t.duration)
}

// String renders the so_/eo_/du_ tokens, in that order, joined by ",".
func (t *VideoTrim) String() string {
	var p params
	p.trim(t)
	return p.String()
}

func (t *VideoTrim) tokens() []string {
	if t == nil {
		return nil
	}
	var out []string
	if t.start != nil {
		out = append(out, "so_"+formatFloat(*t.start))
	}
	if t.end != nil {
		out = append(out, "eo_"+formatFloat(*t.end))
	}
	if t.duration != nil {
		out = append(out, "du_"+formatFloat(*t.duration))
	}
	return out
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

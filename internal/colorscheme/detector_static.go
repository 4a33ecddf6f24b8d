package colorscheme

const (
	detectorNameStatic = "config"
	priorityStatic     = 100
)

// StaticDetector answers with a fixed scheme, typically from configuration.
// An empty or unrecognized scheme makes it unavailable.
type StaticDetector struct {
	scheme string
}

// NewStaticDetector creates a detector for a fixed scheme value.
func NewStaticDetector(scheme string) *StaticDetector {
	return &StaticDetector{scheme: scheme}
}

func (*StaticDetector) Name() string { return detectorNameStatic }

func (*StaticDetector) Priority() int { return priorityStatic }

func (d *StaticDetector) Available() bool {
	_, ok := ParseScheme(d.scheme)
	return ok
}

func (d *StaticDetector) Detect() (bool, bool) {
	return ParseScheme(d.scheme)
}

package forecast

// State is a SeriesModel's position in its lifecycle. Operations advance it
// strictly forward; only Load rewinds it.
type State int

const (
	Unloaded State = iota
	Loaded
	SamplesPrepared
	IndicatorsPrepared
	Split
	Trained
	Evaluated
)

var stateNames = [...]string{
	"Unloaded",
	"Loaded",
	"SamplesPrepared",
	"IndicatorsPrepared",
	"Split",
	"Trained",
	"Evaluated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

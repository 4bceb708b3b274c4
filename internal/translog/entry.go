package translog

// Transfer directions.
const (
	DirectionRequest = "request" // construction side -> engine
	DirectionResult  = "result"  // engine -> construction side
)

// Entry is one logged boundary transfer.
//
// Seq is a logical clock assigned by the store on append; ID is the
// store-internal row ID. Both orderings agree for a single log.
type Entry struct {
	ID            int64  `json:"id"`
	Seq           int64  `json:"seq"`
	SessionToken  string `json:"session_token"`
	Direction     string `json:"direction"`
	ExprID        string `json:"expr_id"`
	Canonical     string `json:"canonical"`
	Wire          []byte `json:"wire"`
	FormatVersion int    `json:"format_version"`
}

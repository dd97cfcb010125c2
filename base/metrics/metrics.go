package metrics

const (
	ServerReqsAcceptedH = "The total number of API requests accepted"
	ServerReqsAcceptedN = "fuzzyservice_server_reqs_accepted"
	ServerReqsServedH   = "The total number of API requests served"
	ServerReqsServedN   = "fuzzyservice_server_reqs_served"
	ServerReqsFailedH   = "The total number of API requests rejected or failed"
	ServerReqsFailedN   = "fuzzyservice_server_reqs_failed"

	ServerEvalsH        = "The total number of crisp model evaluations"
	ServerEvalsN        = "fuzzyservice_server_evals"
	ServerEvalDurationH = "The duration of crisp model evaluations in seconds"
	ServerEvalDurationN = "fuzzyservice_server_eval_duration_seconds"
	ServerEvalsNaNH     = "The total number of crisp evaluations with zero total membership"
	ServerEvalsNaNN     = "fuzzyservice_server_evals_nan"
)

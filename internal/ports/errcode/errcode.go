package errcode

type Code string

const (
	UpstreamUnavailable Code = "UPSTREAM_UNAVAILABLE"
	UpstreamBadPayload  Code = "UPSTREAM_BAD_PAYLOAD"

	Internal Code = "INTERNAL_ERROR"
)

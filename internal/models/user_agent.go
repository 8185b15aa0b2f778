package models

// UnknownLabel is reported when a browser or OS cannot be resolved.
const UnknownLabel = "Unknown"

type UserAgentInfo struct {
	Browser string `json:"browser"`
	OS      string `json:"os"`
}

func UnknownUserAgent() UserAgentInfo {
	return UserAgentInfo{Browser: UnknownLabel, OS: UnknownLabel}
}

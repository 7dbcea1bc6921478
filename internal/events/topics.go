package events

// Topic names a payload-less notification channel. Each topic covers one entity class.
type Topic string

// The notification channels
const (
	AuthChange      Topic = "authChange"
	AdminAuthChange Topic = "adminAuthChange"
	UserChange      Topic = "userChange"
	DataChange      Topic = "dataChange"
	SyncLogs        Topic = "sync-logs"
	SyncUsers       Topic = "sync-users"
	SyncContent     Topic = "sync-content"
	SyncFeedback    Topic = "sync-feedback"
)

// Topics lists every channel in a stable order
var Topics = []Topic{
	AuthChange,
	AdminAuthChange,
	UserChange,
	DataChange,
	SyncLogs,
	SyncUsers,
	SyncContent,
	SyncFeedback,
}

// Valid reports whether t is one of the known channels
func (t Topic) Valid() bool {
	for _, known := range Topics {
		if t == known {
			return true
		}
	}
	return false
}

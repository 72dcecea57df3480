package driver

// Status captures a file's progress through a directory scan.
type Status string

const (
	// StatusQueued indicates the file is waiting to be scanned.
	StatusQueued Status = "queued"
	// StatusScanning indicates the file is being scanned.
	StatusScanning Status = "scanning"
	// StatusCached indicates the file was served from the token cache.
	StatusCached Status = "cached"
	// StatusDone indicates the file was scanned without errors.
	StatusDone Status = "done"
	// StatusError indicates the scan reported diagnostics or failed to read.
	StatusError Status = "error"
)

// Event reports progress for a single file during a directory scan.
type Event struct {
	File   string
	Status Status
	Err    error
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

package asset

import (
	"io"

	"github.com/Carmen-Shannon/showroom-go/viewer/progress"
)

// progressReader counts bytes as they stream off a source and forwards the
// completed fraction to a progress sink. When the total size is unknown the
// fraction stays at zero and the sink only sees the final settle.
type progressReader struct {
	rc    io.ReadCloser
	total int64
	read  int64
	sink  progress.Sink
}

var _ io.ReadCloser = &progressReader{}

func newProgressReader(rc io.ReadCloser, total int64, sink progress.Sink) *progressReader {
	return &progressReader{
		rc:    rc,
		total: total,
		sink:  sink,
	}
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.rc.Read(buf)
	if n > 0 && p.total > 0 {
		p.read += int64(n)
		p.sink.Progress(float32(p.read) / float32(p.total))
	}
	return n, err
}

func (p *progressReader) Close() error {
	return p.rc.Close()
}

// Package cloudwriter uploads finished output objects to cloud storage.
package cloudwriter

import (
	"fmt"
	"io"

	"github.com/xitongsys/parquet-go/source"
)

// CloudWriter buffers writes and uploads them as one object on Close.
type CloudWriter interface {
	Write(data []byte) (int, error)
	Close() error
}

type CloudWriterFactory interface {
	NewWriter(bucket, objectPath string) (CloudWriter, error)
}

// ParquetFile adapts a CloudWriter to the write side of the parquet
// source interface. Reads and seek-from-end are not available, the
// object only exists once the upload completes.
type ParquetFile struct {
	cloudWriter CloudWriter
	offset      int64
}

func NewParquetFile(cloudWriter CloudWriter) *ParquetFile {
	return &ParquetFile{cloudWriter: cloudWriter}
}

func (p *ParquetFile) Open(name string) (source.ParquetFile, error) {
	return p, nil
}

func (p *ParquetFile) Create(name string) (source.ParquetFile, error) {
	return p, nil
}

func (p *ParquetFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		p.offset = offset
	case io.SeekCurrent:
		p.offset += offset
	case io.SeekEnd:
		return 0, fmt.Errorf("seek from end not supported for cloud storage")
	}
	return p.offset, nil
}

func (p *ParquetFile) Read(b []byte) (int, error) {
	return 0, fmt.Errorf("read not supported for cloud storage")
}

func (p *ParquetFile) Write(b []byte) (int, error) {
	return p.cloudWriter.Write(b)
}

func (p *ParquetFile) Close() error {
	return p.cloudWriter.Close()
}

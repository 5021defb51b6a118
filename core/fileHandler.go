package core

import (
	"os"

	"github.com/ElrondNetwork/elrond-go-core/core/check"
	"github.com/ElrondNetwork/elrond-go-core/marshal"
	logger "github.com/ElrondNetwork/elrond-go-logger"
)

var log = logger.GetOrCreate("core")

type fileHandler struct {
	*os.File
	marshalizer marshal.Marshalizer
}

// NewFileHandler will try to open a new file at the provided path, removing any previous content
func NewFileHandler(filePath string, marshalizer marshal.Marshalizer) (*fileHandler, error) {
	if len(filePath) == 0 {
		return nil, ErrEmptyFilePath
	}
	if check.IfNil(marshalizer) {
		return nil, ErrNilMarshalizer
	}

	err := os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return nil, err
	}

	log.Debug("opened output file", "path", filePath)

	return &fileHandler{
		File:        f,
		marshalizer: marshalizer,
	}, nil
}

// WriteObjectInFile will try to write the provided object in the file after it has been marshaled
func (fh *fileHandler) WriteObjectInFile(data interface{}) error {
	buff, err := fh.marshalizer.Marshal(data)
	if err != nil {
		return err
	}

	_, err = fh.Write(buff)

	return err
}

// Close will try to close the file
func (fh *fileHandler) Close() {
	err := fh.File.Close()
	log.LogIfError(err)
}

// IsInterfaceNil returns if underlying object is nil
func (fh *fileHandler) IsInterfaceNil() bool {
	return fh == nil
}

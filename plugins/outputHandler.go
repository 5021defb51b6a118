package plugins

import (
	"fmt"
	"io"

	"github.com/ElrondNetwork/elrond-go-core/core/check"
	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/ElrondNetwork/elrond-randgen-go/core"
	"github.com/ElrondNetwork/elrond-randgen-go/data"
)

var log = logger.GetOrCreate("plugins")

// ArgOutputHandler represents the output handler constructor argument
type ArgOutputHandler struct {
	Console     io.Writer
	FileHandler FileHandler
}

type outputHandler struct {
	console     io.Writer
	fileHandler FileHandler
}

// NewOutputHandler will create a new output handler able to print generated numbers
func NewOutputHandler(arg ArgOutputHandler) (*outputHandler, error) {
	if arg.Console == nil {
		return nil, ErrNilConsoleWriter
	}
	//FileHandler can be nil

	return &outputHandler{
		console:     arg.Console,
		fileHandler: arg.FileHandler,
	}, nil
}

// WriteData prints every generated number on the console and, if set, writes the whole output in the file
func (oh *outputHandler) WriteData(output *data.GeneratorOutput) error {
	if output == nil {
		return ErrNilGeneratorOutput
	}

	for _, n := range output.Numbers {
		_, err := fmt.Fprintf(oh.console, "%s %d\n", core.GeneratedNumberLabel, n)
		if err != nil {
			return err
		}
	}

	if check.IfNil(oh.fileHandler) {
		log.Debug("can not write to output file as it is nil")
		return nil
	}

	return oh.fileHandler.WriteObjectInFile(output)
}

// Close will close the file handler, if any
func (oh *outputHandler) Close() {
	if !check.IfNil(oh.fileHandler) {
		oh.fileHandler.Close()
	}
}

// IsInterfaceNil returns if underlying object is nil
func (oh *outputHandler) IsInterfaceNil() bool {
	return oh == nil
}

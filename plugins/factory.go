package plugins

import (
	"fmt"
	"io"

	"github.com/ElrondNetwork/elrond-go-core/marshal"
	"github.com/ElrondNetwork/elrond-randgen-go/core"
)

// CreateOutputHandlerArgument will create an output handler argument. The file handler is
// only created when an output file path is provided
func CreateOutputHandlerArgument(outputFile string, console io.Writer) (ArgOutputHandler, error) {
	aoh := ArgOutputHandler{
		Console: console,
	}
	if len(outputFile) == 0 {
		return aoh, nil
	}

	fileHandler, err := core.NewFileHandler(outputFile, &marshal.JsonMarshalizer{})
	if err != nil {
		return ArgOutputHandler{}, fmt.Errorf("%w for FileHandler", err)
	}
	aoh.FileHandler = fileHandler

	return aoh, nil
}

package runner

import (
	"fmt"
	"io"

	"github.com/drakos74/first-ml/internal/emoji"
)

// Report prints the human readable summary of the run.
func Report(w io.Writer, res Result) error {
	_, err := fmt.Fprintf(w, "%s Точность модели: %.2f%%\n%s Предсказано %d образцов\n",
		emoji.Target, res.Accuracy*100,
		emoji.Chart, res.Samples)
	return err
}

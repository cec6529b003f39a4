package vis

import (
	"errors"
	"fmt"
	"strings"
)

// ConfusionMatrix describes a csv confusion matrix with target, predicted and
// count columns. labels enumerate the classes in the matrix.
func ConfusionMatrix(source string, labels []string) (Output, error) {
	if err := requireSource(source); err != nil {
		return Output{}, err
	}
	if len(labels) == 0 {
		return Output{}, errors.New("confusion matrix labels are required")
	}
	return Output{
		Type:   TypeConfusionMatrix,
		Format: "csv",
		Source: source,
		Labels: append([]string(nil), labels...),
		Schema: []ColumnSchema{
			{Name: "target", Type: "CATEGORY"},
			{Name: "predicted", Type: "CATEGORY"},
			{Name: "count", Type: "NUMBER"},
		},
	}, nil
}

// ROC describes a csv ROC curve with fpr, tpr and thresholds columns.
func ROC(source string) (Output, error) {
	if err := requireSource(source); err != nil {
		return Output{}, err
	}
	return Output{
		Type:   TypeROC,
		Format: "csv",
		Source: source,
		Schema: []ColumnSchema{
			{Name: "fpr", Type: "NUMBER"},
			{Name: "tpr", Type: "NUMBER"},
			{Name: "thresholds", Type: "NUMBER"},
		},
	}, nil
}

// Table describes a headerless csv rendered as a table with the given header.
func Table(source string, header []string) (Output, error) {
	if err := requireSource(source); err != nil {
		return Output{}, err
	}
	if len(header) == 0 {
		return Output{}, errors.New("table header is required")
	}
	return Output{
		Type:   TypeTable,
		Format: "csv",
		Source: source,
		Header: append([]string(nil), header...),
	}, nil
}

// Markdown describes a markdown document stored at source.
func Markdown(source string) (Output, error) {
	if err := requireSource(source); err != nil {
		return Output{}, err
	}
	return Output{Type: TypeMarkdown, Source: source}, nil
}

// InlineMarkdown embeds markdown text directly in the document.
func InlineMarkdown(text string) (Output, error) {
	if err := requireSource(text); err != nil {
		return Output{}, err
	}
	return Output{Type: TypeMarkdown, Storage: StorageInline, Source: text}, nil
}

// Tensorboard points the UI at a tensorboard log directory.
func Tensorboard(logDir string) (Output, error) {
	if err := requireSource(logDir); err != nil {
		return Output{}, err
	}
	return Output{Type: TypeTensorboard, Source: logDir}, nil
}

// WebApp embeds a custom html page rendered by the UI.
func WebApp(html string) (Output, error) {
	if err := requireSource(html); err != nil {
		return Output{}, err
	}
	return Output{Type: TypeWebApp, Storage: StorageInline, Source: html}, nil
}

func requireSource(source string) error {
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("output source is required")
	}
	return nil
}

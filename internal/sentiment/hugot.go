package sentiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/options"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/spacesedan/sentimeter/config"
)

const hugotPipelineName = "sentimeter-sentiment"

type textClassificationPipeline interface {
	RunPipeline(inputs []string) (*pipelines.TextClassificationOutput, error)
}

// HugotClassifier runs a pre-trained text classification model loaded from
// disk at startup.
type HugotClassifier struct {
	session  *hugot.Session
	pipeline textClassificationPipeline
	labels   map[string]string
}

// NewHugotClassifier loads the model at cfg.ModelPath into an onnxruntime
// session. ModelPath is either the exported model directory or the .onnx file
// inside it. onnxruntime allows one live session per process.
func NewHugotClassifier(cfg config.ClassifierConfig) (*HugotClassifier, error) {
	modelPath := cfg.ModelPath
	info, err := os.Stat(modelPath)
	if err != nil {
		return nil, fmt.Errorf("model file not found at %s: %w", modelPath, err)
	}

	pipelineConfig := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      hugotPipelineName,
	}
	if !info.IsDir() {
		pipelineConfig.ModelPath = filepath.Dir(modelPath)
		pipelineConfig.OnnxFilename = filepath.Base(modelPath)
	}

	start := time.Now()
	session, err := hugot.NewORTSession(sessionOptions(cfg)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create model session: %w", err)
	}

	pipeline, err := hugot.NewPipeline(session, pipelineConfig)
	if err != nil {
		return nil, errors.Join(
			fmt.Errorf("failed to load model from %s: %w", modelPath, err),
			session.Destroy(),
		)
	}

	slog.Info("[HugotClassifier] Model loaded",
		slog.String("path", modelPath),
		slog.Duration("elapsed", time.Since(start)))

	return &HugotClassifier{
		session:  session,
		pipeline: pipeline,
		labels:   cfg.ModelLabels,
	}, nil
}

// sessionOptions leaves the onnxruntime default lookup in place when no
// library path is configured.
func sessionOptions(cfg config.ClassifierConfig) []options.WithOption {
	var opts []options.WithOption
	if cfg.OnnxLibraryPath != "" {
		opts = append(opts, options.WithOnnxLibraryPath(cfg.OnnxLibraryPath))
	}
	return opts
}

func (h *HugotClassifier) Classify(ctx context.Context, text string) (Label, error) {
	if err := ctx.Err(); err != nil {
		return Unknown, err
	}

	out, err := h.pipeline.RunPipeline([]string{text})
	if err != nil {
		return Unknown, err
	}
	if out == nil || len(out.ClassificationOutputs) == 0 || len(out.ClassificationOutputs[0]) == 0 {
		return Unknown, errors.New("model returned no prediction")
	}

	best := out.ClassificationOutputs[0][0]
	for _, candidate := range out.ClassificationOutputs[0][1:] {
		if candidate.Score > best.Score {
			best = candidate
		}
	}

	label := ParseModelLabel(best.Label, h.labels)
	if label == Unknown {
		slog.Debug("[HugotClassifier] Unmapped model label",
			slog.String("label", best.Label))
	}
	return label, nil
}

func (h *HugotClassifier) Close() error {
	if h.session == nil {
		return nil
	}
	return h.session.Destroy()
}

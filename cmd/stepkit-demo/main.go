// Command stepkit-demo walks through authoring a pipeline step: it composes
// a transform chain, applies it together with the artifact location contract,
// and prints the shaped step spec plus the UI documents a step would emit.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/animus-labs/stepkit/artifact"
	"github.com/animus-labs/stepkit/metrics"
	"github.com/animus-labs/stepkit/step"
	"github.com/animus-labs/stepkit/transform"
	"github.com/animus-labs/stepkit/vis"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	var (
		scheme    = flag.String("scheme", "minio", "Artifact repository scheme")
		bucket    = flag.String("bucket", "mlpipeline", "Artifact repository bucket")
		keyPrefix = flag.String("key-prefix", "artifacts/", "Artifact repository key prefix")
		repoFile  = flag.String("repo-config", "", "Artifact repository YAML (overrides scheme/bucket/key-prefix)")
		image     = flag.String("image", "ghcr.io/animus-labs/trainer:latest", "Step container image")
	)
	flag.Parse()

	location, err := locationConfig(*repoFile, *scheme, *bucket, *keyPrefix)
	if err != nil {
		die("artifact location config", err)
	}

	stepName := "demo-step-" + uuid.NewString()[:8]
	spec := step.Spec{Name: stepName, Image: *image}

	composed, err := transform.NewBuilder().
		SetResources(transform.ResRange("500m", "1"), transform.Res("1Gi")).
		SetImagePullPolicy("IfNotPresent").
		SetEnvVars(map[string]string{"MODEL_DIR": "/tmp/model", "EPOCHS": "3"}).
		SetEnvVarFromSecret("AWS_SECRET_ACCESS_KEY", "storage-creds", "secretkey").
		SetAnnotations(map[string]string{"sidecar.istio.io/inject": "false"}).
		Add(location.SetEnvs()).
		Build()
	if err != nil {
		die("compose transforms", err)
	}

	composed.Apply(&spec)
	if err := spec.Validate(); err != nil {
		die("validate step spec", err)
	}
	logger.Info("step spec shaped", "step", stepName, "env_vars", len(spec.Env))

	out, err := yaml.Marshal(spec)
	if err != nil {
		die("marshal step spec", err)
	}
	fmt.Printf("---\n# step spec after transforms\n%s", out)

	table, err := vis.Table("minio://mlpipeline/artifacts/demo/demo/predictions", []string{"feature", "prediction"})
	if err != nil {
		die("build table output", err)
	}
	md, err := vis.InlineMarkdown("# demo\nshaped by stepkit")
	if err != nil {
		die("build markdown output", err)
	}
	uiMeta := vis.New(table, md)

	accuracy, err := metrics.New("accuracy-score", 0.93, metrics.FormatPercentage)
	if err != nil {
		die("build metric", err)
	}

	fmt.Println("---")
	fmt.Println("# mlpipeline-ui-metadata.json")
	if err := uiMeta.Write(os.Stdout); err != nil {
		die("write ui metadata", err)
	}
	fmt.Println("# mlpipeline-metrics.json")
	if err := metrics.Collect(accuracy).Write(os.Stdout); err != nil {
		die("write metrics", err)
	}
}

func locationConfig(repoFile, scheme, bucket, keyPrefix string) (artifact.LocationConfig, error) {
	if repoFile != "" {
		return artifact.LoadLocationConfig(repoFile)
	}
	return artifact.NewLocationConfig(scheme, bucket, keyPrefix)
}

func die(stage string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", stage, err)
	os.Exit(1)
}

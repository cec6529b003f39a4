package artifact

import "testing"

func TestParseLocationConfig(t *testing.T) {
	raw := []byte(`
s3:
  bucket: mlpipeline
  keyPrefix: artifacts
  endpoint: minio-service.kubeflow:9000
  insecure: true
`)
	cfg, err := ParseLocationConfig(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scheme() != "minio" {
		t.Fatalf("expected insecure repository to map to minio, got %q", cfg.Scheme())
	}
	if cfg.Bucket() != "mlpipeline" {
		t.Fatalf("expected bucket mlpipeline, got %q", cfg.Bucket())
	}
	if cfg.KeyPrefix() != "artifacts/" {
		t.Fatalf("expected normalized prefix artifacts/, got %q", cfg.KeyPrefix())
	}
}

func TestParseLocationConfigSecure(t *testing.T) {
	raw := []byte("s3:\n  bucket: pipelines\n")
	cfg, err := ParseLocationConfig(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Scheme() != "s3" {
		t.Fatalf("expected s3 scheme, got %q", cfg.Scheme())
	}
	if cfg.KeyPrefix() != "" {
		t.Fatalf("expected empty prefix, got %q", cfg.KeyPrefix())
	}
}

func TestParseLocationConfigRejectsBadDocuments(t *testing.T) {
	if _, err := ParseLocationConfig([]byte("gcs: {}\n")); err == nil {
		t.Fatalf("expected missing s3 section to fail")
	}
	if _, err := ParseLocationConfig([]byte("s3: {}\n")); err == nil {
		t.Fatalf("expected missing bucket to fail")
	}
	if _, err := ParseLocationConfig([]byte(":\n-")); err == nil {
		t.Fatalf("expected malformed yaml to fail")
	}
}

package vis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/animus-labs/stepkit/artifact"
)

// VegaOptions tune the generated vega-embed page.
type VegaOptions struct {
	// Title of the generated page.
	Title string
	// EmbedOpts are passed through to vega-embed.
	EmbedOpts map[string]any
	// VegaVersion and VegaLiteVersion pick the script major versions.
	VegaVersion     int
	VegaLiteVersion int
}

// Vega wraps a Vega or Vega-Lite spec in a vega-embed html page, returned as
// an inline web-app output. Any *artifact.Reference found in the spec's data
// section is rewritten into the pipeline UI's artifact API call so the UI
// fetches the data through its own backend (which is why the loader is forced
// to send same-origin credentials).
func Vega(spec map[string]any, opts *VegaOptions) (Output, error) {
	if len(spec) == 0 {
		return Output{}, fmt.Errorf("vega spec is required")
	}

	options := VegaOptions{Title: "Generated by stepkit/vis", VegaVersion: 5, VegaLiteVersion: 4}
	if opts != nil {
		if opts.Title != "" {
			options.Title = opts.Title
		}
		if opts.VegaVersion > 0 {
			options.VegaVersion = opts.VegaVersion
		}
		if opts.VegaLiteVersion > 0 {
			options.VegaLiteVersion = opts.VegaLiteVersion
		}
		options.EmbedOpts = opts.EmbedOpts
	}

	embedOpts := forceSameOriginLoader(options.EmbedOpts)

	if data, ok := spec["data"]; ok && data != nil {
		rewritten, err := referencesToAPICalls(data)
		if err != nil {
			return Output{}, err
		}
		spec = shallowCopy(spec)
		spec["data"] = rewritten
	}

	html, err := vegaEmbedHTML(spec, embedOpts, options)
	if err != nil {
		return Output{}, err
	}
	return WebApp(html)
}

// forceSameOriginLoader sets loader.http.credentials=same-origin so the UI's
// session cookies accompany data fetches, without clobbering other options.
func forceSameOriginLoader(opts map[string]any) map[string]any {
	out := shallowCopy(opts)
	loader, _ := out["loader"].(map[string]any)
	loader = shallowCopy(loader)
	httpOpts, _ := loader["http"].(map[string]any)
	httpOpts = shallowCopy(httpOpts)
	httpOpts["credentials"] = "same-origin"
	loader["http"] = httpOpts
	out["loader"] = loader
	return out
}

// referencesToAPICalls walks a value and replaces every *artifact.Reference
// with the UI api path that serves it.
func referencesToAPICalls(value any) (any, error) {
	switch v := value.(type) {
	case *artifact.Reference:
		return referenceAPICall(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			converted, err := referencesToAPICalls(item)
			if err != nil {
				return nil, err
			}
			out[key] = converted
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			converted, err := referencesToAPICalls(item)
			if err != nil {
				return nil, err
			}
			out[i] = converted
		}
		return out, nil
	}
	return value, nil
}

func referenceAPICall(ref *artifact.Reference) (string, error) {
	scheme, err := ref.Scheme()
	if err != nil {
		return "", err
	}
	bucket, err := ref.Bucket()
	if err != nil {
		return "", err
	}
	key, err := ref.Key()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("artifacts/get?source=%s&bucket=%s&key=%s", scheme, bucket, key), nil
}

func shallowCopy(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// marshalForScript keeps & and friends intact; the output lands in a script
// block, not in html text.
func marshalForScript(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func vegaEmbedHTML(spec, opts map[string]any, options VegaOptions) (string, error) {
	specJSON, err := marshalForScript(spec)
	if err != nil {
		return "", fmt.Errorf("marshal vega spec: %w", err)
	}
	optsJSON, err := marshalForScript(opts)
	if err != nil {
		return "", fmt.Errorf("marshal vega embed opts: %w", err)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <script src="https://cdn.jsdelivr.net/npm/vega@%d"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-lite@%d"></script>
  <script src="https://cdn.jsdelivr.net/npm/vega-embed@4"></script>
  <title>%s</title>
  <style>
    html, body {
      width: 100%%;
      height: 100%%;
      margin: 0px;
      border: 0;
    }
    #vis {
      width: 100%%;
      height: 100%%;
    }
  </style>
</head>
<body>

<div id="vis"></div>

<script type="text/javascript">
  var spec = %s;
  var opts = %s;
  vegaEmbed('#vis', spec, opts).catch(console.error);
</script>
</body>
</html>
`, options.VegaVersion, options.VegaLiteVersion, options.Title, specJSON, optsJSON), nil
}

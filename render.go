package adaptable

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	// ErrNoTemplatePath is returned when a template path is needed, but
	// none are supplied.
	ErrNoTemplatePath = errors.New("need at least one template path")

	// ErrTemplatePatternMatchesNoFiles is returned when a template path is
	// a pattern, but that pattern doesn't match any files.
	ErrTemplatePatternMatchesNoFiles = errors.New("pattern matches no files")
)

const tracerName = "impractical.co/adaptable"

type renderInstruments struct {
	renders  metric.Int64Counter
	duration metric.Float64Histogram
}

// instruments are created once, from whatever MeterProvider is global at the
// first render.
var instruments = sync.OnceValue(func() renderInstruments {
	meter := otel.GetMeterProvider().Meter(tracerName)
	var inst renderInstruments
	var err error
	inst.renders, err = meter.Int64Counter(
		"adaptable.render.count",
		metric.WithDescription("Count of pages rendered, by outcome"),
	)
	if err != nil {
		otel.Handle(err)
	}
	inst.duration, err = meter.Float64Histogram(
		"adaptable.render.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("Time taken to render a page, in milliseconds"),
	)
	if err != nil {
		otel.Handle(err)
	}
	return inst
})

func recordRender(ctx context.Context, key, outcome string, took time.Duration) {
	inst := instruments()
	attrs := metric.WithAttributes(
		attribute.String("adaptable.page.key", key),
		attribute.String("adaptable.render.outcome", outcome),
	)
	if inst.renders != nil {
		inst.renders.Add(ctx, 1, attrs)
	}
	if inst.duration != nil {
		inst.duration.Record(ctx, float64(took)/float64(time.Millisecond), attrs)
	}
}

// Component is an interface for a piece of the page that can be rendered to
// HTML.
type Component interface {
	// Templates returns a list of paths or glob patterns, relative to the
	// Site's TemplateDir, that need to be parsed before the Component can
	// be rendered. Patterns may use "**" to match any number of
	// directories.
	Templates(context.Context) []string
}

// ComponentUser is an interface that a Component can optionally implement to
// list the Components that it relies upon. Their templates, stylesheets, AMD
// calls and template functions are included whenever the user is rendered.
type ComponentUser interface {
	// UseComponents returns the Components that this Component relies on.
	UseComponents(context.Context) []Component
}

// FuncMapExtender is an interface that Components and Sites can fulfill to
// add to the map of functions available to templates.
type FuncMapExtender interface {
	// FuncMap returns the functions being added. Functions are bound at
	// parse time and cached with the template, so they must not close over
	// per-request state.
	FuncMap(context.Context) template.FuncMap
}

// Renderable is an interface for a page that can be passed to Render.
type Renderable interface {
	Component

	// Key is a unique key to use when caching this page so it doesn't need
	// to be re-parsed. A good key is consistent, but unique per set of
	// templates.
	Key(context.Context) string

	// ExecutedTemplate is the name of the template that needs to actually
	// be executed when rendering the page.
	ExecutedTemplate(context.Context) string
}

// RenderData is the data that is passed to a page when rendering it.
type RenderData[SiteType Site, PageType Renderable] struct {
	// Site is the Site the page is being rendered for, holding
	// configuration shared by every page.
	Site SiteType

	// Page is the page being rendered.
	Page PageType

	// LinkedCSS holds the stylesheets linked by the page and every
	// Component it uses, de-duplicated, in first-seen order.
	LinkedCSS []CSSLink

	// AMDCalls holds the client-side module calls attached by the page
	// and every Component it uses.
	AMDCalls []AMDCall

	// Script is the JavaScript source for AMDCalls, ready to be placed in
	// a <script> element. It's empty when there are no calls.
	Script template.JS
}

// Render renders the passed Renderable to the Writer. If it can't, a server
// error page is written instead. If the Site implements ServerErrorPager,
// that will be rendered; if not, a plain text message indicating a server
// error will be written.
func Render[SiteType Site, PageType Renderable](ctx context.Context, out io.Writer, site SiteType, page PageType) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "adaptable.Render", trace.WithAttributes(
		attribute.String("adaptable.page.key", page.Key(ctx)),
		attribute.String("adaptable.page.type", fmt.Sprintf("%T", page)),
	))
	defer span.End()

	start := time.Now()
	outcome := "ok"
	defer func() {
		recordRender(ctx, page.Key(ctx), outcome, time.Since(start))
	}()

	defer func() {
		// if the writer can be closed, let's try to close it
		if closer, ok := out.(io.Closer); ok {
			err := closer.Close()
			if err != nil {
				logger(ctx).ErrorContext(ctx, "error closing response writer", "error", err)
			}
		}
	}()

	err := basicRender(ctx, out, site, page)
	if err == nil {
		return
	}

	outcome = "server_error"
	span.RecordError(err)
	span.SetStatus(codes.Error, "error rendering page")
	logger(ctx).ErrorContext(ctx, "error rendering page", "error", err, "page", fmt.Sprintf("%T", page))

	if pager, ok := Site(site).(ServerErrorPager); ok {
		err = basicRender(ctx, out, site, pager.ServerErrorPage(ctx))
		if err != nil {
			// nothing left to fall back on
			span.RecordError(err)
			logger(ctx).ErrorContext(ctx, "error rendering server error page", "error", err)
		}
		return
	}

	_, err = out.Write([]byte("Server error."))
	if err != nil {
		logger(ctx).ErrorContext(ctx, "error writing server error message", "error", err)
	}
}

func basicRender[SiteType Site, PageType Renderable](ctx context.Context, output io.Writer, site SiteType, page PageType) error {
	tmpl, err := getTemplate(ctx, site, page)
	if err != nil {
		return err
	}

	calls := getComponentAMDCalls(ctx, page)
	script, err := amdScript(calls)
	if err != nil {
		return fmt.Errorf("error building scripts for %T: %w", page, err)
	}

	data := RenderData[SiteType, PageType]{
		Site:      site,
		Page:      page,
		LinkedCSS: getComponentCSSLinks(ctx, page),
		AMDCalls:  calls,
		Script:    script,
	}

	// execute into a buffer so a failed render never leaves half a page
	// in front of the server error page
	var buf bytes.Buffer
	executed := page.ExecutedTemplate(ctx)
	err = tmpl.ExecuteTemplate(&buf, executed, data)
	if err != nil {
		return fmt.Errorf("error executing template %q for %T: %w", executed, page, err)
	}
	_, err = buf.WriteTo(output)
	if err != nil {
		return fmt.Errorf("error writing %T: %w", page, err)
	}
	return nil
}

func getTemplate(ctx context.Context, site Site, page Renderable) (*template.Template, error) {
	key := page.Key(ctx)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "adaptable.getTemplate", trace.WithAttributes(
		attribute.String("adaptable.page.key", key),
	))
	defer span.End()

	if cache, ok := site.(TemplateCacher); ok {
		cached := cache.GetCachedTemplate(ctx, key)
		if cached != nil {
			span.SetAttributes(attribute.Bool("adaptable.template.cached", true))
			return cached, nil
		}
	}
	span.SetAttributes(attribute.Bool("adaptable.template.cached", false))

	tmplPaths := getComponentTemplatePaths(ctx, page)
	if len(tmplPaths) < 1 {
		return nil, fmt.Errorf("error rendering %T: %w", page, ErrNoTemplatePath)
	}
	funcMap := getComponentFuncMap(ctx, site, page)
	parsed, err := parseTemplates(site.TemplateDir(ctx), funcMap, tmplPaths...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "error parsing templates")
		return nil, fmt.Errorf("error parsing templates %v for page %T: %w", tmplPaths, page, err)
	}
	if cache, ok := site.(TemplateCacher); ok {
		cache.SetCachedTemplate(ctx, key, parsed)
	}
	logger(ctx).DebugContext(ctx, "parsed templates", "key", key, "templates", tmplPaths)
	return parsed, nil
}

func getRecursiveComponents(ctx context.Context, component Component) []Component {
	results := []Component{component}

	if uses, ok := component.(ComponentUser); ok {
		children := uses.UseComponents(ctx)
		for _, child := range children {
			results = append(results, getRecursiveComponents(ctx, child)...)
		}
	}
	return results
}

func getComponentTemplatePaths(ctx context.Context, component Component) []string {
	var results []string
	seen := map[string]struct{}{}
	components := getRecursiveComponents(ctx, component)
	for _, comp := range components {
		paths := comp.Templates(ctx)
		for _, path := range paths {
			if _, ok := seen[path]; !ok {
				results = append(results, path)
				seen[path] = struct{}{}
			}
		}
	}
	return results
}

func getComponentFuncMap(ctx context.Context, site Site, component Component) template.FuncMap {
	results := template.FuncMap{}
	if fm, ok := site.(FuncMapExtender); ok {
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	components := getRecursiveComponents(ctx, component)
	for _, comp := range components {
		fm, ok := comp.(FuncMapExtender)
		if !ok {
			continue
		}
		results = mergeFuncMaps(results, fm.FuncMap(ctx))
	}
	return results
}

func parseTemplates(fsys fs.FS, funcs template.FuncMap, patterns ...string) (*template.Template, error) {
	var files []string
	for _, pattern := range patterns {
		list, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error listing files for %q: %w", pattern, err)
		}
		if len(list) < 1 {
			return nil, fmt.Errorf("error parsing %q: %w", pattern, ErrTemplatePatternMatchesNoFiles)
		}
		files = append(files, list...)
	}
	if len(files) < 1 {
		return nil, ErrNoTemplatePath
	}
	tmpl := template.New("").Funcs(funcs)
	for _, file := range files {
		sub := tmpl.New(file)
		contents, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("error reading %q: %w", file, err)
		}
		_, err = sub.Parse(string(contents))
		if err != nil {
			return nil, fmt.Errorf("error parsing %q: %w", file, err)
		}
	}
	return tmpl, nil
}

// mergeFuncMaps flattens two FuncMaps into one, with the values in `page`
// overriding the values in `in` if they have the same keys.
func mergeFuncMaps(in template.FuncMap, page template.FuncMap) template.FuncMap {
	res := template.FuncMap{}
	for k, v := range in {
		res[k] = v
	}
	for k, v := range page {
		res[k] = v
	}
	return res
}

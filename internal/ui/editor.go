package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"
	"slices"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/text-overlay/internal/bus"
	"github.com/ytget/text-overlay/internal/config"
	"github.com/ytget/text-overlay/internal/fonts"
	"github.com/ytget/text-overlay/internal/logging"
	"github.com/ytget/text-overlay/internal/model"
)

// ErrMissingControl is returned when the editor form lacks a bound control.
var ErrMissingControl = errors.New("settings form is missing a control")

// controls holds every input of the settings form. It is built once and
// checked for completeness before the editor is used.
type controls struct {
	text          *widget.Entry
	fontFamily    *widget.SelectEntry
	fontSize      *widget.Entry
	letterSpacing *widget.Entry
	color         *widget.Entry
	fontWeight    *widget.Select
	hAlign        *widget.Select
	vAlign        *widget.Select
	position      *widget.Select
	padding       *widget.Entry
	display       *widget.Select
	clickThrough  *widget.Check
	shadowColor   *widget.Entry
	shadowOpacity *widget.Slider
	shadowOffsetX *widget.Entry
	shadowOffsetY *widget.Entry
	shadowBlur    *widget.Entry
}

// newControls creates the form inputs for the families in manifest.
func newControls(manifest *fonts.Manifest) *controls {
	fontOptions := append([]string{model.SystemFontFamily}, manifest.Names()...)

	c := &controls{
		text:          widget.NewEntry(),
		fontFamily:    widget.NewSelectEntry(fontOptions),
		fontSize:      widget.NewEntry(),
		letterSpacing: widget.NewEntry(),
		color:         widget.NewEntry(),
		fontWeight:    widget.NewSelect(weightStrings(manifest.WeightOptions(model.DefaultFontFamily)), nil),
		hAlign:        widget.NewSelect(stringsOf(model.HAlignOptions()), nil),
		vAlign:        widget.NewSelect(stringsOf(model.VAlignOptions()), nil),
		position:      widget.NewSelect(append([]string{DashPlaceholder}, stringsOf(model.PositionOptions())...), nil),
		padding:       widget.NewEntry(),
		display:       widget.NewSelect(stringsOf(model.DisplayOptions()), nil),
		clickThrough:  widget.NewCheck("", nil),
		shadowColor:   widget.NewEntry(),
		shadowOpacity: widget.NewSlider(OpacityMin, OpacityMax),
		shadowOffsetX: widget.NewEntry(),
		shadowOffsetY: widget.NewEntry(),
		shadowBlur:    widget.NewEntry(),
	}
	c.text.SetPlaceHolder(model.DefaultText)
	c.color.SetPlaceHolder(model.DefaultColor)
	c.shadowColor.SetPlaceHolder(model.DefaultShadowColor)
	c.shadowOpacity.Step = 0 // continuous
	return c
}

// validate reports the first control that is not bound.
func (c *controls) validate() error {
	if c == nil {
		return ErrMissingControl
	}
	v := reflect.ValueOf(c).Elem()
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).IsNil() {
			return fmt.Errorf("%w: %s", ErrMissingControl, v.Type().Field(i).Name)
		}
	}
	return nil
}

// Editor is the settings form. Every input change persists and broadcasts the
// complete settings.
type Editor struct {
	app          fyne.App
	store        *config.Store
	bus          *bus.Bus
	manifest     *fonts.Manifest
	origin       uuid.UUID
	localization *Localization
	log          *slog.Logger

	c           *controls
	populating  bool
	current     model.Settings
	unsubscribe func()

	language    *widget.Select
	languages   map[string]string
	resetButton *widget.Button
	closeButton *widget.Button
	onClose     func()
	content     *fyne.Container
}

// NewEditor creates the editor, binds its controls, loads the stored settings
// into the form and subscribes to the bus. manifest lists the selectable font
// families and may be nil.
func NewEditor(app fyne.App, store *config.Store, b *bus.Bus, manifest *fonts.Manifest, localization *Localization) (*Editor, error) {
	return newEditorWithControls(app, store, b, manifest, localization, newControls(manifest))
}

func newEditorWithControls(app fyne.App, store *config.Store, b *bus.Bus, manifest *fonts.Manifest, localization *Localization, c *controls) (*Editor, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if localization == nil {
		localization = NewLocalization()
	}

	e := &Editor{
		app:          app,
		store:        store,
		bus:          b,
		manifest:     manifest,
		origin:       bus.NewOrigin(),
		localization: localization,
		log:          logging.WithComponent("editor"),
		c:            c,
	}

	e.bindHandlers()
	e.populate(store.Load())
	e.buildChrome()
	e.content = container.NewStack(e.buildContent())
	e.unsubscribe = b.Subscribe(e.onEvent)
	return e, nil
}

// Content returns the form to place in a window
func (e *Editor) Content() fyne.CanvasObject {
	return e.content
}

// SetOnClose sets what the Close button does, usually closing the window.
func (e *Editor) SetOnClose(fn func()) {
	e.onClose = fn
}

// Origin identifies events published by this editor
func (e *Editor) Origin() uuid.UUID {
	return e.origin
}

// Current returns the settings the form currently shows
func (e *Editor) Current() model.Settings {
	return e.current
}

// Close detaches the editor from the bus
func (e *Editor) Close() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// Reset restores the defaults into the form and commits them once.
func (e *Editor) Reset() {
	defaults := model.DefaultSettings()
	e.populate(defaults)
	e.commit(defaults)
}

func (e *Editor) bindHandlers() {
	onText := func(string) { e.onInput() }

	e.c.text.OnChanged = onText
	e.c.fontFamily.OnChanged = func(family string) {
		e.refreshWeights(family)
		e.onInput()
	}
	e.c.fontSize.OnChanged = onText
	e.c.letterSpacing.OnChanged = onText
	e.c.color.OnChanged = onText
	e.c.fontWeight.OnChanged = onText
	e.c.hAlign.OnChanged = onText
	e.c.vAlign.OnChanged = onText
	e.c.position.OnChanged = onText
	e.c.padding.OnChanged = onText
	e.c.display.OnChanged = onText
	e.c.clickThrough.OnChanged = func(bool) { e.onInput() }
	e.c.shadowColor.OnChanged = onText
	e.c.shadowOpacity.OnChanged = func(float64) { e.onInput() }
	e.c.shadowOffsetX.OnChanged = onText
	e.c.shadowOffsetY.OnChanged = onText
	e.c.shadowBlur.OnChanged = onText
}

// refreshWeights offers the weights available for family. The selection is
// kept when still offered and moves to the first option otherwise.
func (e *Editor) refreshWeights(family string) {
	options := weightStrings(e.manifest.WeightOptions(strings.TrimSpace(family)))

	populating := e.populating
	e.populating = true
	defer func() { e.populating = populating }()

	selected := e.c.fontWeight.Selected
	e.c.fontWeight.Options = options
	e.c.fontWeight.Refresh()
	if !slices.Contains(options, selected) {
		selected = options[0]
	}
	e.c.fontWeight.SetSelected(selected)
}

func (e *Editor) onInput() {
	if e.populating {
		return
	}
	e.commit(e.collect())
}

// commit persists s and broadcasts it. A failed save does not stop the
// broadcast; the overlay renders from the in-memory value.
func (e *Editor) commit(s model.Settings) {
	e.current = s
	if err := e.store.Save(s); err != nil {
		e.log.Warn("settings not persisted", "error", err)
	}
	e.bus.PublishSettings(e.origin, s)
}

func (e *Editor) onEvent(ev bus.Event) {
	changed, ok := ev.(bus.SettingsChanged)
	if !ok || changed.Origin == e.origin {
		return
	}
	if err := e.store.Save(changed.Settings); err != nil {
		e.log.Warn("settings not persisted", "error", err)
	}
	e.populate(changed.Settings)
}

// collect reads every control into a complete Settings. Numeric inputs that
// are empty or invalid take that field's default.
func (e *Editor) collect() model.Settings {
	c := e.c

	family := strings.TrimSpace(c.fontFamily.Text)
	if family == "" {
		family = model.DefaultFontFamily
	}
	weight := c.fontWeight.Selected
	if weight == "" {
		weight = model.DefaultFontWeight
	}
	position := model.Position(c.position.Selected)
	if c.position.Selected == DashPlaceholder {
		position = ""
	}

	return model.Settings{
		Text:          c.text.Text,
		FontFamily:    family,
		FontSize:      parseNumber(c.fontSize.Text, model.DefaultFontSize),
		LetterSpacing: parseNumber(c.letterSpacing.Text, model.DefaultLetterSpacing),
		Color:         orDefault(c.color.Text, model.DefaultColor),
		FontWeight:    weight,
		HAlign:        model.HAlign(orDefault(c.hAlign.Selected, string(model.DefaultHAlign))),
		VAlign:        model.VAlign(orDefault(c.vAlign.Selected, string(model.DefaultVAlign))),
		Position:      position,
		Padding:       parseNumber(c.padding.Text, model.DefaultPadding),
		Display:       model.Display(orDefault(c.display.Selected, string(model.DefaultDisplay))),
		ClickThrough:  c.clickThrough.Checked,
		Shadow: model.Shadow{
			Color:   orDefault(c.shadowColor.Text, model.DefaultShadowColor),
			Opacity: c.shadowOpacity.Value,
			OffsetX: parseNumber(c.shadowOffsetX.Text, model.DefaultShadowOffsetX),
			OffsetY: parseNumber(c.shadowOffsetY.Text, model.DefaultShadowOffsetY),
			Blur:    parseNumber(c.shadowBlur.Text, model.DefaultShadowBlur),
		},
	}
}

// populate shows s in the form without triggering commits.
func (e *Editor) populate(s model.Settings) {
	e.populating = true
	defer func() { e.populating = false }()

	c := e.c
	c.text.SetText(s.Text)
	c.fontFamily.SetText(s.FontFamily)
	e.refreshWeights(s.FontFamily)
	c.fontSize.SetText(formatNumber(s.FontSize))
	c.letterSpacing.SetText(formatNumber(s.LetterSpacing))
	c.color.SetText(s.Color)
	c.fontWeight.SetSelected(s.FontWeight)
	c.hAlign.SetSelected(string(s.HAlign))
	c.vAlign.SetSelected(string(s.VAlign.Normalize()))
	if s.Position == "" {
		c.position.SetSelected(DashPlaceholder)
	} else {
		c.position.SetSelected(string(s.Position))
	}
	c.padding.SetText(formatNumber(s.Padding))
	c.display.SetSelected(string(s.Display))
	c.clickThrough.SetChecked(s.ClickThrough)
	c.shadowColor.SetText(s.Shadow.Color)
	c.shadowOpacity.SetValue(s.Shadow.Opacity)
	c.shadowOffsetX.SetText(formatNumber(s.Shadow.OffsetX))
	c.shadowOffsetY.SetText(formatNumber(s.Shadow.OffsetY))
	c.shadowBlur.SetText(formatNumber(s.Shadow.Blur))

	e.current = s
}

// buildChrome creates the widgets around the form: the language picker and
// the Reset and Close buttons.
func (e *Editor) buildChrome() {
	e.languages = config.GetLanguageOptions()
	codes := make([]string, 0, len(e.languages))
	for code := range e.languages {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == config.DefaultLanguage || codes[j] == config.DefaultLanguage {
			return codes[i] == config.DefaultLanguage
		}
		return codes[i] < codes[j]
	})
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = e.languages[code]
	}

	e.language = widget.NewSelect(names, nil)
	if name, ok := e.languages[e.localization.GetCurrentLanguage()]; ok {
		e.language.SetSelected(name)
	}
	e.language.OnChanged = func(name string) {
		for _, code := range codes {
			if e.languages[code] == name {
				e.setLanguage(code)
				return
			}
		}
	}

	e.resetButton = widget.NewButton("", e.Reset)
	e.resetButton.Importance = widget.LowImportance
	e.closeButton = widget.NewButton("", func() {
		if e.onClose != nil {
			e.onClose()
		}
	})
}

// setLanguage saves the UI language and relabels the form.
func (e *Editor) setLanguage(code string) {
	if e.app != nil {
		config.SetLanguage(e.app, code)
	}
	e.localization.SetLanguage(code)
	e.content.Objects = []fyne.CanvasObject{e.buildContent()}
	e.content.Refresh()
}

func (e *Editor) buildContent() fyne.CanvasObject {
	l := e.localization
	c := e.c

	textForm := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyText), c.text),
		widget.NewFormItem(l.GetText(KeyFontFamily), c.fontFamily),
		widget.NewFormItem(l.GetText(KeyFontSize), c.fontSize),
		widget.NewFormItem(l.GetText(KeyFontWeight), c.fontWeight),
		widget.NewFormItem(l.GetText(KeyLetterSpacing), c.letterSpacing),
		widget.NewFormItem(l.GetText(KeyColor), c.color),
	)
	layoutForm := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyHorizontalAlign), c.hAlign),
		widget.NewFormItem(l.GetText(KeyVerticalAlign), c.vAlign),
		widget.NewFormItem(l.GetText(KeyPosition), c.position),
		widget.NewFormItem(l.GetText(KeyPadding), c.padding),
		widget.NewFormItem(l.GetText(KeyDisplay), c.display),
		widget.NewFormItem(l.GetText(KeyClickThrough), c.clickThrough),
	)
	shadowForm := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyShadowColor), c.shadowColor),
		widget.NewFormItem(l.GetText(KeyShadowOpacity), c.shadowOpacity),
		widget.NewFormItem(l.GetText(KeyShadowOffsetX), c.shadowOffsetX),
		widget.NewFormItem(l.GetText(KeyShadowOffsetY), c.shadowOffsetY),
		widget.NewFormItem(l.GetText(KeyShadowBlur), c.shadowBlur),
	)
	appForm := widget.NewForm(
		widget.NewFormItem(l.GetText(KeyLanguage), e.language),
	)

	e.resetButton.SetText(l.GetText(KeyReset))
	e.closeButton.SetText(l.GetText(KeyClose))

	form := container.NewVBox(
		widget.NewCard(l.GetText(KeySectionText), "", textForm),
		widget.NewCard(l.GetText(KeySectionLayout), "", layoutForm),
		widget.NewCard(l.GetText(KeySectionShadow), "", shadowForm),
		widget.NewCard(l.GetText(KeySectionApp), "", appForm),
	)
	buttons := container.NewHBox(e.resetButton, layout.NewSpacer(), e.closeButton)
	return container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(form))
}

func parseNumber(text string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func weightStrings(weights []int) []string {
	out := make([]string, len(weights))
	for i, w := range weights {
		out[i] = strconv.Itoa(w)
	}
	return out
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

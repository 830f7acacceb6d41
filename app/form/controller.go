package form

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/km-arc/kindform/app/datakind"
	gohttp "github.com/km-arc/kindform/framework/http"
	"github.com/km-arc/kindform/framework/routing"
)

// SubmissionHeader carries the id of an accepted submission.
const SubmissionHeader = "X-Submission-ID"

// Controller serves the form as an HTML page and as a JSON API.
type Controller struct {
	form   *Form
	views  *gohttp.ViewEngine
	logger *zap.Logger
	title  string
}

// NewController creates a Controller. views may be nil when only the JSON
// API is served.
func NewController(f *Form, views *gohttp.ViewEngine, logger *zap.Logger, title string) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{form: f, views: views, logger: logger, title: title}
}

// Routes registers the controller's endpoints on r.
func (c *Controller) Routes(r *routing.Router) {
	if c.views != nil {
		r.Get("/", c.Show)
		r.Post("/", c.SubmitHTML)
	}
	r.Get("/healthz", c.Healthz)
	r.Prefix("/api", func(api *routing.Router) {
		api.Get("/options", c.Options)
		api.Post("/validate", c.Validate)
		api.Post("/submit", c.Submit)
	})
}

// ── HTML ─────────────────────────────────────────────────────────────────────

type page struct {
	Title       string
	Entries     []datakind.Entry
	State       State
	ShowMessage bool
	Submission  string
	ID          string
}

// Show renders the form, pre-filled from the catalog or from ?option=&values=.
func (c *Controller) Show(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)

	state := c.form.Initial()
	touched := req.HasQuery(datakind.FieldOption) || req.HasQuery(datakind.FieldValues)
	if touched {
		opt, _ := datakind.ParseOption(req.Query(datakind.FieldOption))
		state = c.form.OnChange(State{Option: opt, Values: req.Query(datakind.FieldValues)})
	}
	c.render(w, http.StatusOK, page{State: state, ShowMessage: touched})
}

// SubmitHTML handles the form-encoded post of the HTML page.
func (c *Controller) SubmitHTML(w http.ResponseWriter, r *http.Request) {
	var p Payload
	if err := gohttp.NewRequest(r).Bind(&p); err != nil {
		c.logger.Debug("bind form", zap.Error(err))
		c.render(w, http.StatusBadRequest, page{State: c.form.OnChange(State{})})
		return
	}

	ctx := WithSubmissionID(r.Context(), "")
	state, sub, err := c.form.OnSubmit(ctx, p.State())
	switch {
	case err != nil:
		c.logger.Error("submit failed", zap.String("submission_id", SubmissionID(ctx)), zap.Error(err))
		state.Message = "Submission failed"
		c.render(w, http.StatusInternalServerError, page{State: state, ShowMessage: true})
	case sub == nil:
		c.render(w, http.StatusUnprocessableEntity, page{State: state, ShowMessage: true})
	default:
		body, _ := json.Marshal(sub)
		w.Header().Set(SubmissionHeader, SubmissionID(ctx))
		c.render(w, http.StatusOK, page{State: state, Submission: string(body), ID: SubmissionID(ctx)})
	}
}

func (c *Controller) render(w http.ResponseWriter, status int, p page) {
	p.Title = c.title
	p.Entries = c.form.Catalog().Entries
	c.views.View(w, status, "form", p)
}

// ── JSON API ─────────────────────────────────────────────────────────────────

type optionView struct {
	Option      datakind.Option `json:"option"`
	Label       string          `json:"label"`
	Max         int             `json:"max"`
	Placeholder string          `json:"placeholder"`
	Widget      datakind.Widget `json:"widget"`
}

// Options lists the offered options: GET /api/options.
func (c *Controller) Options(w http.ResponseWriter, _ *http.Request) {
	entries := c.form.Catalog().Entries
	out := make([]optionView, 0, len(entries))
	for _, e := range entries {
		con, _ := datakind.Lookup(e.Option)
		out = append(out, optionView{
			Option:      e.Option,
			Label:       e.Label,
			Max:         con.MaxItems,
			Placeholder: con.Placeholder,
			Widget:      con.Widget,
		})
	}
	gohttp.NewResponse(w).Success(out)
}

type validateView struct {
	Option      datakind.Option `json:"option"`
	Valid       bool            `json:"valid"`
	Reason      datakind.Reason `json:"reason,omitempty"`
	Message     string          `json:"message,omitempty"`
	Values      []string        `json:"values,omitempty"`
	Placeholder string          `json:"placeholder"`
	Widget      datakind.Widget `json:"widget"`
}

// Validate re-checks the form after a change: POST /api/validate.
func (c *Controller) Validate(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	p, ok := c.bind(res, r)
	if !ok {
		return
	}
	state := c.form.OnChange(p.State())
	res.Success(validateView{
		Option:      state.Option,
		Valid:       state.Valid(),
		Reason:      state.Result.Reason,
		Message:     state.Message,
		Values:      state.Result.Values,
		Placeholder: state.Placeholder,
		Widget:      state.Widget,
	})
}

// Submit accepts a form: POST /api/submit. Invalid forms get 422 and never
// reach the submit callback.
func (c *Controller) Submit(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	p, ok := c.bind(res, r)
	if !ok {
		return
	}

	ctx := WithSubmissionID(r.Context(), "")
	state, sub, err := c.form.OnSubmit(ctx, p.State())
	if err != nil {
		c.logger.Error("submit failed", zap.String("submission_id", SubmissionID(ctx)), zap.Error(err))
		res.ServerError("Submission failed.")
		return
	}
	if sub == nil {
		c.logger.Debug("submit rejected",
			zap.Int("option", int(state.Option)),
			zap.String("reason", string(state.Result.Reason)),
		)
		res.ValidationError(state.Result.Errors())
		return
	}
	res.Header(SubmissionHeader, SubmissionID(ctx)).Created(sub)
}

// Healthz reports liveness: GET /healthz.
func (c *Controller) Healthz(w http.ResponseWriter, _ *http.Request) {
	gohttp.NewResponse(w).Success(map[string]string{"status": "ok"})
}

func (c *Controller) bind(res *gohttp.Response, r *http.Request) (Payload, bool) {
	var p Payload
	if err := gohttp.NewRequest(r).Bind(&p); err != nil {
		msg := "Malformed request body."
		if errors.Is(err, gohttp.ErrEmptyBody) {
			msg = "Request body is empty."
		}
		res.Error(http.StatusBadRequest, msg)
		return p, false
	}
	return p, true
}

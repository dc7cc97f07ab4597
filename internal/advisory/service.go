package advisory

//go:generate mockgen -destination=./service_mock_test.go -package=advisory -source=service.go Service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"kisanmitra/internal/domain"
	"kisanmitra/internal/i18n"
	"kisanmitra/internal/inference"
	"kisanmitra/internal/panel"
)

const panelName = "services"

// Service defines the business logic of the agricultural services panel.
type Service interface {
	// Select opens the form of kind. Unknown kinds fail with domain.ErrValidation.
	Select(sessionID uuid.UUID, kind domain.ServiceKind) error
	// Back returns to the catalog, clearing the form and any result.
	Back(sessionID uuid.UUID)
	// Attach records an uploaded image by name.
	Attach(sessionID uuid.UUID, lang domain.Language, a Attachment) (domain.Notification, error)
	// Submit analyzes the query. A zero Kind falls back to the selected one,
	// a nil Image to the last attachment.
	Submit(ctx context.Context, sessionID uuid.UUID, lang domain.Language, q Query) (*Result, error)
	State(sessionID uuid.UUID, lang domain.Language) View
	Discard(sessionID uuid.UUID)
	Sessions() []uuid.UUID
}

// Result is a finished analysis.
type Result struct {
	Kind  domain.ServiceKind `json:"kind"`
	Title string             `json:"title"`
	Text  string             `json:"text"`
}

// Labels are the panel's resolved captions.
type Labels struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Upload      string `json:"upload"`
	Selected    string `json:"selected"`
	Describe    string `json:"describe"`
	Placeholder string `json:"placeholder"`
	Analyzing   string `json:"analyzing"`
	Submit      string `json:"submit"`
	Back        string `json:"back"`
	Result      string `json:"result"`
}

func LabelsFor(lang domain.Language) Labels {
	return Labels{
		Title:       i18n.T("services.title", lang),
		Subtitle:    i18n.T("services.subtitle", lang),
		Upload:      i18n.T("services.upload", lang),
		Selected:    i18n.T("services.selected", lang),
		Describe:    i18n.T("services.describe", lang),
		Placeholder: i18n.T("services.placeholder", lang),
		Analyzing:   i18n.T("services.analyzing", lang),
		Submit:      i18n.T("services.submit", lang),
		Back:        i18n.T("services.back", lang),
		Result:      i18n.T("services.result", lang),
	}
}

// View is the panel as the page renders it. Kind is empty while the
// catalog is shown.
type View struct {
	Labels  Labels             `json:"labels"`
	Catalog []Card             `json:"catalog"`
	Kind    domain.ServiceKind `json:"kind,omitempty"`
	Form    *Card              `json:"form,omitempty"`
	Text    string             `json:"text,omitempty"`
	Image   *Attachment        `json:"image,omitempty"`
	Loading bool               `json:"loading"`
	Result  *Result            `json:"result,omitempty"`
}

type panelState struct {
	gate *panel.Gate

	mu     sync.Mutex
	kind   domain.ServiceKind
	text   string
	image  *Attachment
	result *Result
}

func (st *panelState) reset() {
	st.kind = ""
	st.text = ""
	st.image = nil
	st.result = nil
}

type service struct {
	analyzer Analyzer
	events   EventPublisher
	states   *panel.Registry[*panelState]
}

// NewService is the constructor for the services panel.
func NewService(analyzer Analyzer, events EventPublisher) Service {
	return &service{
		analyzer: analyzer,
		events:   events,
		states: panel.NewRegistry(func(uuid.UUID) *panelState {
			return &panelState{gate: panel.NewGate()}
		}),
	}
}

func (s *service) Select(sessionID uuid.UUID, kind domain.ServiceKind) error {
	if _, ok := domain.ParseServiceKind(string(kind)); !ok {
		return fmt.Errorf("unknown service %q: %w", kind, domain.ErrValidation)
	}
	st := s.states.Get(sessionID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.kind != kind {
		st.reset()
		st.kind = kind
	}
	return nil
}

func (s *service) Back(sessionID uuid.UUID) {
	st, ok := s.states.Lookup(sessionID)
	if !ok {
		return
	}
	st.mu.Lock()
	st.reset()
	st.mu.Unlock()
}

func (s *service) Attach(sessionID uuid.UUID, lang domain.Language, a Attachment) (domain.Notification, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return domain.Notification{}, panel.Fail(s.events, sessionID,
			fmt.Errorf("image name is required: %w", domain.ErrValidation),
			i18n.Notice(domain.LevelError, lang, "services.notice.empty_input.title", "services.notice.empty_input.description"))
	}

	st := s.states.Get(sessionID)
	st.mu.Lock()
	st.image = &a
	st.mu.Unlock()

	n := domain.Notification{
		Level:       domain.LevelSuccess,
		Title:       i18n.T("services.notice.image_uploaded", lang),
		Description: a.Name,
	}
	panel.Announce(s.events, sessionID, n)
	return n, nil
}

func (s *service) Submit(ctx context.Context, sessionID uuid.UUID, lang domain.Language, q Query) (result *Result, err error) {
	defer func() { panel.Record(panelName, err) }()

	st := s.states.Get(sessionID)
	st.mu.Lock()
	if q.Kind == "" {
		q.Kind = st.kind
	}
	if q.Image == nil {
		q.Image = st.image
	}
	st.mu.Unlock()

	if _, ok := domain.ParseServiceKind(string(q.Kind)); !ok || q.empty() {
		return nil, panel.Fail(s.events, sessionID,
			fmt.Errorf("service query needs a kind and text or an image: %w", domain.ErrValidation),
			i18n.Notice(domain.LevelError, lang, "services.notice.empty_input.title", "services.notice.empty_input.description"))
	}

	if !st.gate.TryEnter() {
		return nil, panel.Fail(s.events, sessionID, domain.ErrPending,
			i18n.Notice(domain.LevelInfo, lang, "common.notice.pending.title", "common.notice.pending.description"))
	}
	defer st.gate.Leave()

	text := strings.TrimSpace(q.Text)
	st.mu.Lock()
	if st.kind != q.Kind {
		st.reset()
		st.kind = q.Kind
	}
	st.text = text
	if q.Image != nil {
		img := *q.Image
		st.image = &img
	}
	st.result = nil
	st.mu.Unlock()

	iq := inference.Query{Text: text}
	if q.Image != nil {
		iq.ImageName = q.Image.Name
	}
	reply, err := s.analyzer.Analyze(ctx, lang, q.Kind, iq)
	if err != nil {
		if !errors.Is(err, domain.ErrRequestFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrRequestFailed, err)
		}
		return nil, panel.Fail(s.events, sessionID,
			fmt.Errorf("could not analyze %s query: %w", q.Kind, err),
			i18n.Notice(domain.LevelError, lang, "services.notice.failed", ""))
	}

	result = &Result{Kind: q.Kind, Title: i18n.T("services.result", lang), Text: reply}
	st.mu.Lock()
	// Back during the analysis abandons the result.
	if st.kind == q.Kind {
		r := *result
		st.result = &r
	}
	st.mu.Unlock()
	return result, nil
}

func (s *service) State(sessionID uuid.UUID, lang domain.Language) View {
	v := View{Labels: LabelsFor(lang), Catalog: Catalog(lang)}
	st, ok := s.states.Lookup(sessionID)
	if !ok {
		return v
	}

	v.Loading = st.gate.Pending()
	st.mu.Lock()
	defer st.mu.Unlock()
	v.Kind = st.kind
	if st.kind != "" {
		for i := range v.Catalog {
			if v.Catalog[i].Kind == st.kind {
				card := v.Catalog[i]
				v.Form = &card
			}
		}
	}
	v.Text = st.text
	if st.image != nil {
		img := *st.image
		v.Image = &img
	}
	if st.result != nil {
		r := *st.result
		v.Result = &r
	}
	return v
}

func (s *service) Discard(sessionID uuid.UUID) {
	s.states.Remove(sessionID)
}

func (s *service) Sessions() []uuid.UUID {
	return s.states.IDs()
}

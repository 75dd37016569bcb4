package window

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"ventanaCalc/internal/domain"
	"ventanaCalc/internal/ports"
)

// Server реализует WindowServiceServer поверх use case калькулятора.
type Server struct {
	uc  ports.ICalculatorUseCase
	log *slog.Logger
}

// New создаёт gRPC-сервер калькулятора окон.
func New(uc ports.ICalculatorUseCase, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{uc: uc, log: log}
}

// ListSystems возвращает каталог систем профиля.
func (s *Server) ListSystems(_ context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	systems := s.uc.Systems()
	list := make([]any, len(systems))
	for i, p := range systems {
		list[i] = map[string]any{"id": p.ID, "name": p.Name, "available": p.Available}
	}
	return newStruct(map[string]any{"systems": list})
}

// Calculate считает раскрой; computable=false, если размеры не заданы.
func (s *Server) Calculate(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	systemID := stringField(req, "systemId")
	w, h := dimension(req, "width"), dimension(req, "height")
	set, ok := s.uc.Calculate(systemID, w, h)
	out := map[string]any{"computable": ok, "systemId": systemID, "width": w, "height": h}
	if ok {
		out["results"] = resultsMap(set)
		out["rows"] = rowsList(set)
	}
	return newStruct(out)
}

// SaveEntry сохраняет расчёт в историю.
func (s *Server) SaveEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	entry, err := s.uc.SaveEntry(ctx,
		stringField(req, "description"),
		stringField(req, "systemId"),
		dimension(req, "width"),
		dimension(req, "height"))
	if err != nil {
		return nil, s.toStatus("save entry", err)
	}
	return newStruct(map[string]any{"entry": entryMap(*entry)})
}

// History возвращает сохранённые расчёты, новые первыми.
func (s *Server) History(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	list, err := s.uc.History(ctx)
	if err != nil {
		return nil, s.toStatus("history", err)
	}
	items := make([]any, len(list))
	for i, e := range list {
		items[i] = entryMap(e)
	}
	return newStruct(map[string]any{"items": items})
}

// GetEntry возвращает одну запись; NotFound, если её нет.
func (s *Server) GetEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := stringField(req, "id")
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	e, err := s.uc.Entry(ctx, id)
	if err != nil {
		return nil, s.toStatus("get entry", err)
	}
	return newStruct(map[string]any{"entry": entryMap(*e)})
}

// RemoveEntry удаляет запись по id (отсутствующий id — не ошибка).
func (s *Server) RemoveEntry(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id := stringField(req, "id")
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if err := s.uc.RemoveEntry(ctx, id); err != nil {
		return nil, s.toStatus("remove entry", err)
	}
	return &structpb.Struct{}, nil
}

func (s *Server) ClearHistory(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	if err := s.uc.ClearHistory(ctx); err != nil {
		return nil, s.toStatus("clear history", err)
	}
	return &structpb.Struct{}, nil
}

func (s *Server) toStatus(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrUnknownSystem),
		errors.Is(err, domain.ErrSystemUnavailable),
		errors.Is(err, domain.ErrNotComputable):
		return status.Errorf(codes.InvalidArgument, "%v", err)
	case errors.Is(err, domain.ErrEntryNotFound):
		return status.Errorf(codes.NotFound, "%v", err)
	}
	s.log.Error(op+" failed", "error", err)
	return status.Errorf(codes.Internal, "%v", err)
}

func newStruct(m map[string]any) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return st, nil
}

func stringField(req *structpb.Struct, name string) string {
	return req.GetFields()[name].GetStringValue()
}

// dimension принимает число или свободный текст, как и HTTP API.
func dimension(req *structpb.Struct, name string) float64 {
	v := req.GetFields()[name]
	switch v.GetKind().(type) {
	case *structpb.Value_NumberValue:
		return v.GetNumberValue()
	case *structpb.Value_StringValue:
		return domain.ParseDimension(v.GetStringValue())
	}
	return 0
}

func resultsMap(set domain.MeasurementSet) map[string]any {
	out := make(map[string]any, set.Len())
	set.Each(func(name string, value float64) { out[name] = value })
	return out
}

// rowsList сохраняет порядок размеров (Struct — это map, порядок ключей в нём не гарантирован).
func rowsList(set domain.MeasurementSet) []any {
	rows := domain.Rows(set)
	out := make([]any, len(rows))
	for i, r := range rows {
		out[i] = map[string]any{"key": r.Key, "label": r.Label, "value": r.Value, "display": r.Display}
	}
	return out
}

func entryMap(e domain.HistoryEntry) map[string]any {
	return map[string]any{
		"id":          e.ID,
		"description": e.Description,
		"date":        e.CreatedAt.UTC().Format(time.RFC3339Nano),
		"systemId":    e.SystemID,
		"systemName":  e.SystemName,
		"width":       e.Width,
		"height":      e.Height,
		"results":     resultsMap(e.Results),
		"rows":        rowsList(e.Results),
	}
}

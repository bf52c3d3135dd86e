package services

import (
	"context"
	"sync"

	"github.com/vnkhanh/e-academy-backend/models"
	"go.uber.org/zap"
)

// BrowseState là trạng thái trang duyệt tài liệu, chỉ thay đổi qua Reduce
type BrowseState struct {
	Criteria  models.FilterCriteria
	Resources []models.Resource
	Loading   bool
	Seq       uint64 // tăng mỗi lần criteria đổi
	LastError string
}

type ActionKind int

const (
	ActionSetCriteria ActionKind = iota
	ActionSetSearch
	ActionClearSearch
	ActionClearAll
	ActionFetchStarted
	ActionFetchResolved
)

type Action struct {
	Kind      ActionKind
	Criteria  models.FilterCriteria
	Search    string
	Defaults  models.FilterCriteria // dùng cho ClearAll
	Seq       uint64
	Resources []models.Resource
	Err       error
}

// Reduce trả về trạng thái mới, không sửa state đầu vào.
// Kết quả fetch có Seq khác Seq hiện tại bị bỏ qua.
func Reduce(state BrowseState, a Action) BrowseState {
	next := state
	switch a.Kind {
	case ActionSetCriteria:
		next.Criteria = a.Criteria
		next.Seq++
	case ActionSetSearch:
		next.Criteria.SearchQuery = a.Search
		next.Seq++
	case ActionClearSearch:
		next.Criteria.SearchQuery = ""
		next.Seq++
	case ActionClearAll:
		next.Criteria = a.Defaults
		next.Seq++
	case ActionFetchStarted:
		if a.Seq == state.Seq {
			next.Loading = true
		}
	case ActionFetchResolved:
		if a.Seq != state.Seq {
			return state
		}
		next.Loading = false
		if a.Err != nil {
			next.Resources = []models.Resource{}
			next.LastError = a.Err.Error()
		} else {
			next.Resources = a.Resources
			next.LastError = ""
		}
	}
	return next
}

// BrowseLoader chạy fetch bất đồng bộ, mỗi request mới hủy request trước đó
// và chỉ kết quả của request mới nhất được giao ra.
type BrowseLoader struct {
	source CatalogSource
	logger *zap.Logger

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewBrowseLoader(source CatalogSource, logger *zap.Logger) *BrowseLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BrowseLoader{source: source, logger: logger}
}

// Load bắt đầu fetch cho criteria với số thứ tự seq. deliver chỉ được gọi
// khi seq vẫn là request mới nhất lúc kết quả về. seq cũ hơn request đã
// nhận thì bị bỏ qua.
func (l *BrowseLoader) Load(ctx context.Context, seq uint64, criteria models.FilterCriteria, deliver func(Action)) {
	l.mu.Lock()
	if latest := l.seq; seq < latest {
		l.mu.Unlock()
		l.logger.Debug("skip outdated load", zap.Uint64("seq", seq), zap.Uint64("latest", latest))
		return
	}
	if l.cancel != nil {
		l.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	l.seq = seq
	l.cancel = cancel
	l.mu.Unlock()

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()
		resources, err := l.source.ListResources(fetchCtx, &criteria)
		if err != nil {
			if IsCanceled(err) && fetchCtx.Err() != nil && ctx.Err() == nil {
				// bị thay bởi request mới hơn
				return
			}
			l.logger.Error("load resources failed", zap.Uint64("seq", seq), zap.Error(err))
		}

		l.mu.Lock()
		latest := l.seq == seq
		l.mu.Unlock()
		if !latest {
			l.logger.Debug("discard stale resources", zap.Uint64("seq", seq))
			return
		}
		deliver(Action{Kind: ActionFetchResolved, Seq: seq, Resources: resources, Err: err})
	}()
}

// Wait chờ mọi fetch đang chạy kết thúc
func (l *BrowseLoader) Wait() {
	l.wg.Wait()
}

// Close hủy fetch đang chạy và chờ goroutine thoát
func (l *BrowseLoader) Close() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.mu.Unlock()
	l.wg.Wait()
}

// BrowseSession ghép Reduce với BrowseLoader: mỗi thay đổi criteria
// tạo một fetch mới, kết quả cũ bị bỏ.
type BrowseSession struct {
	loader *BrowseLoader

	mu    sync.Mutex
	state BrowseState
}

func NewBrowseSession(loader *BrowseLoader, initial models.FilterCriteria) *BrowseSession {
	return &BrowseSession{loader: loader, state: BrowseState{Criteria: initial}}
}

func (s *BrowseSession) State() BrowseState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch áp dụng action; nếu criteria đổi thì khởi động fetch mới
func (s *BrowseSession) Dispatch(ctx context.Context, a Action) BrowseState {
	s.mu.Lock()
	before := s.state.Seq
	s.state = Reduce(s.state, a)
	st := s.state
	if st.Seq != before {
		s.state = Reduce(s.state, Action{Kind: ActionFetchStarted, Seq: st.Seq})
		st = s.state
	}
	s.mu.Unlock()

	if st.Seq != before {
		s.loader.Load(ctx, st.Seq, st.Criteria, s.apply)
	}
	return st
}

func (s *BrowseSession) apply(a Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	s.mu.Unlock()
}

package presentation

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"eduslide-api/internal/config"
	"eduslide-api/internal/domain/entity"
	"eduslide-api/internal/domain/repository"
	"eduslide-api/pkg/errors"
	"eduslide-api/pkg/logger"
	"eduslide-api/pkg/metrics"
)

// Service 演示文稿生成服务。编排校验、提纲、并发内容生成、
// 配图解析、文档组装与持久化。
type Service struct {
	cfg        *config.Config
	generator  *SlotGenerator
	images     *ImageResolver
	downloader ImageDownloader
	store      repository.DeckStore
}

// NewService 创建生成服务。downloader 可为 nil（未配置图片提供商时）。
func NewService(cfg *config.Config, generator *SlotGenerator, images *ImageResolver, downloader ImageDownloader, store repository.DeckStore) *Service {
	return &Service{
		cfg:        cfg,
		generator:  generator,
		images:     images,
		downloader: downloader,
		store:      store,
	}
}

// Generate 端到端生成一份演示文稿并持久化。
// 校验失败与存储失败返回错误；模型和图片故障在内部降级，不向上冒泡。
func (s *Service) Generate(ctx context.Context, cfg *entity.SlideConfiguration) (*entity.GeneratedDocument, error) {
	start := time.Now()

	if err := cfg.Validate(); err != nil {
		var verr *entity.ValidationError
		if stderrors.As(err, &verr) {
			return nil, errors.New(errors.CodeValidationFailed, verr.Reason).WithDetail(verr.Field)
		}
		return nil, errors.Wrap(err, errors.CodeValidationFailed, "invalid configuration")
	}
	cfg.Topic = strings.TrimSpace(cfg.Topic)

	id := newDocumentID()
	ctx = logger.WithContext(ctx, logger.PresentationIDKey, id)
	logger.Info(ctx, "presentation generation started",
		"topic", cfg.Topic, "num_slides", cfg.SlideCount, "include_quiz", cfg.IncludeQuiz)

	plan := BuildPlan(cfg)
	slots, imageRefs := s.fillSlots(ctx, cfg, plan)
	imageBytes := s.downloadImages(ctx, imageRefs)

	data, totalSlides, err := assembleDeck(cfg, slots, imageBytes, imageRefs)
	if err != nil {
		metrics.DeckGenerationTotal.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, errors.CodeAssemblyFailed, "failed to assemble presentation")
	}

	if err := s.store.Write(ctx, id, data); err != nil {
		metrics.DeckGenerationTotal.WithLabelValues("error").Inc()
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to persist presentation")
	}

	elapsed := time.Since(start)
	metrics.DeckGenerationTotal.WithLabelValues("success").Inc()
	metrics.DeckGenerationDuration.WithLabelValues(string(cfg.Style)).Observe(elapsed.Seconds())
	logger.Info(ctx, "presentation generation finished",
		"total_slides", totalSlides, "size_bytes", len(data), "elapsed_ms", elapsed.Milliseconds())

	return &entity.GeneratedDocument{
		ID:        id,
		Config:    *cfg,
		Slots:     slots,
		Images:    imageRefs,
		TotalSize: int64(len(data)),
		CreatedAt: start.UTC(),
	}, nil
}

// fillSlots 并发填充所有槽位。结果按槽位序号写入预分配切片，
// 与完成顺序无关；单槽位超时由槽位级 context 控制。
func (s *Service) fillSlots(ctx context.Context, cfg *entity.SlideConfiguration, plan entity.SlidePlan) ([]entity.FilledSlot, map[int]*entity.ImageReference) {
	filled := make([]entity.FilledSlot, len(plan.Slots))
	refs := make([]*entity.ImageReference, len(plan.Slots))

	g, gctx := errgroup.WithContext(ctx)
	if limit := s.cfg.Generation.MaxConcurrentSlots; limit > 0 {
		g.SetLimit(limit)
	}

	for i, slot := range plan.Slots {
		g.Go(func() error {
			slotCtx := logger.WithContext(gctx, logger.SlotIndexKey, slot.Index)
			if s.cfg.Generation.SlotTimeout > 0 {
				var cancel context.CancelFunc
				slotCtx, cancel = context.WithTimeout(slotCtx, s.cfg.Generation.SlotTimeout)
				defer cancel()
			}

			params := ParamsForSlot(cfg, slot)
			switch slot.Kind {
			case entity.SlotQuiz:
				quiz, _ := s.generator.GenerateQuiz(slotCtx, params)
				filled[i] = entity.FilledSlot{Slot: slot, Quiz: &quiz}
			default:
				content, _ := s.generator.GenerateContent(slotCtx, params)
				filled[i] = entity.FilledSlot{Slot: slot, Content: &content}
				if cfg.IncludeImages && s.images != nil {
					refs[i] = s.images.Resolve(slotCtx, content.Keywords)
				}
			}
			return nil
		})
	}
	// 工作函数从不返回错误，Wait 仅作同步点
	_ = g.Wait()

	imageRefs := make(map[int]*entity.ImageReference)
	for i, ref := range refs {
		if ref != nil {
			imageRefs[plan.Slots[i].Index] = ref
		}
	}
	return filled, imageRefs
}

// downloadImages 拉取已解析图片的字节。单张失败仅丢弃该图。
func (s *Service) downloadImages(ctx context.Context, refs map[int]*entity.ImageReference) map[int][]byte {
	out := make(map[int][]byte, len(refs))
	if s.downloader == nil {
		return out
	}
	for idx, ref := range refs {
		data, err := s.downloadOne(ctx, ref.URL)
		if err != nil {
			logger.Warn(ctx, "image download failed, slide will render without image",
				"slot_index", idx, "url", ref.URL, "error", err)
			continue
		}
		out[idx] = data
	}
	return out
}

func (s *Service) downloadOne(ctx context.Context, url string) ([]byte, error) {
	if s.cfg.Generation.ImageTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Generation.ImageTimeout)
		defer cancel()
	}
	return s.downloader.Download(ctx, url)
}

// Retrieve 按标识符读取已生成的文档字节
func (s *Service) Retrieve(ctx context.Context, id string) ([]byte, error) {
	data, err := s.store.Read(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrDocumentNotFound) {
			return nil, errors.New(errors.CodePresentationNotFound, "presentation not found").WithDetail(id)
		}
		return nil, errors.Wrap(err, errors.CodeStorageError, "failed to read presentation")
	}
	return data, nil
}

// newDocumentID 生成形如 pres_a1b2c3d4e5f6 的不透明标识符
func newDocumentID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "pres_" + hex[:12]
}

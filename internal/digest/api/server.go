package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stock-digest/internal/digest/helper"
	"stock-digest/internal/digest/model"
	"stock-digest/internal/digest/processor"
)

type Server struct {
	Stores *helper.Stores
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.GET("/reports", s.listReports) // ?source=&min_cap=&page=1&limit=20
	return r
}

func (s *Server) listReports(c *gin.Context) {
	filter := bson.M{}
	if v := c.Query("source"); v != "" {
		filter["source"] = v
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	skip := int64((page - 1) * limit)

	total, err := s.Stores.Reports.CountDocuments(c, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// 最新的报告在前
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))
	cur, err := s.Stores.Reports.Find(c, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer func(cur *mongo.Cursor, ctx context.Context) {
		err := cur.Close(ctx)
		if err != nil {

		}
	}(cur, c)

	var out []model.Report
	for cur.Next(c) {
		var r model.Report
		if err := cur.Decode(&r); err != nil {
			continue
		}
		out = append(out, r)
	}

	// min_cap 给定时在瞬时副本上过滤并重新渲染，库里的行不动
	if v := c.Query("min_cap"); v != "" {
		threshold, err := strconv.ParseInt(v, 10, 64)
		if err != nil || threshold < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_cap"})
			return
		}
		for i := range out {
			if len(out[i].Categories) == 0 {
				// 原文回退的行没有结构可滤
				continue
			}
			filtered := processor.FilterByMarketCap(out[i], threshold)
			filtered.Content = processor.RenderDocument(filtered.Categories)
			out[i] = filtered
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"total": total,
		"data":  out,
		"page":  page,
		"limit": limit,
	})
}

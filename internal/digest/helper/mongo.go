package helper

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stock-digest/internal/digest/model"
)

type Stores struct {
	DB      *mongo.Database
	Reports *mongo.Collection // 固定集合：reports
}

func MustMongo(ctx context.Context, host, dbname, username, password, authSource string) *Stores {
	clientOpts := options.Client().
		ApplyURI("mongodb://" + host).
		SetAuth(options.Credential{
			Username:   username,
			Password:   password,
			AuthSource: authSource,
		})

	cli, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		panic(err)
	}
	if err = cli.Ping(ctx, nil); err != nil {
		panic(err)
	}

	db := cli.Database(dbname)
	s := &Stores{
		DB:      db,
		Reports: db.Collection("reports"),
	}
	ensureIndexes(ctx, s)
	return s
}

func ensureIndexes(ctx context.Context, s *Stores) {
	// reports: 列表页按日期倒序翻页，来源可选过滤
	_, _ = s.Reports.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "source", Value: 1}}},
	})
}

// UpsertReport 整行替换式 upsert：同一 id 重跑直接覆盖旧行，
// 不做字段级合并，重叠窗口反复跑也是收敛的。
func (s *Stores) UpsertReport(ctx context.Context, r *model.Report) error {
	opts := options.Replace().SetUpsert(true)
	_, err := s.Reports.ReplaceOne(ctx, bson.M{"_id": r.ID}, r, opts)
	return err
}

// -------- 时区工具 --------

var seoul *time.Location

// ConfigureTimeLocation 设置分组用的时区，默认 Asia/Seoul
func ConfigureTimeLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// 兜底固定到 UTC+9，避免时区库加载失败直接崩
		loc = time.FixedZone("KST", 9*3600)
	}
	seoul = loc
	return nil
}

// Location 当前配置的时区；忘记初始化时仍兜底 UTC+9
func Location() *time.Location {
	if seoul == nil {
		return time.FixedZone("KST", 9*3600)
	}
	return seoul
}

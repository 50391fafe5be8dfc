package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency menjaga POST dengan Idempotency-Key agar tidak diproses dua
// kali: response pertama di-cache, request ganda saat proses berlangsung
// ditolak dengan 409.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		username := c.GetString("username")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), username, idempKey)
		lockKey := cacheKey + ":lock"

		// 1. Sudah pernah selesai? Balas ulang response yang tersimpan.
		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cachedRes any
			if json.Unmarshal([]byte(val), &cachedRes) == nil {
				c.AbortWithStatusJSON(http.StatusOK, cachedRes)
				return
			}
		}

		// 2. Atomic lock (SetNX). Expiry pendek agar lock hilang sendiri
		// jika proses crash di tengah jalan.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "PROCESSING",
				"message": "Transaksi Anda sedang diproses, mohon tunggu sebentar.",
			})
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = recorder

		c.Next()

		// 3. Simpan response sukses untuk replay, lalu lepas lock.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			rdb.Set(c.Request.Context(), cacheKey, recorder.body.Bytes(), 24*time.Hour)
		}
		rdb.Del(c.Request.Context(), lockKey)
	}
}

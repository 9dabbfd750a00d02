// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
// 1. HTTP指标：请求总数、耗时分布、处理中请求数（由Gin中间件采集）
// 2. 业务指标：下单结果、进货确认次数（由用例层上报）
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTPRequestsTotal HTTP请求总数
	// 标签：method、path（路由模板）、status
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时分布
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数
	HTTPRequestsInProgress prometheus.Gauge

	// CheckoutTotal 结算总数
	// 标签：result（success/failure）
	CheckoutTotal *prometheus.CounterVec

	// CheckoutDuration 结算事务耗时分布
	CheckoutDuration prometheus.Histogram

	// ReplenishmentConfirmedTotal 进货订单确认总数
	ReplenishmentConfirmedTotal prometheus.Counter
)

// Init 初始化所有Prometheus指标
// 必须在程序启动时调用一次，将指标注册到默认Registry
func Init() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookstore",
		Name:      "http_requests_total",
		Help:      "HTTP请求总数",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bookstore",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP请求耗时（秒）",
		Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
	}, []string{"method", "path"})

	HTTPRequestsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bookstore",
		Name:      "http_requests_in_progress",
		Help:      "正在处理的HTTP请求数",
	})

	CheckoutTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bookstore",
		Name:      "checkout_total",
		Help:      "结算总数",
	}, []string{"result"})

	CheckoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "bookstore",
		Name:      "checkout_duration_seconds",
		Help:      "结算事务耗时（秒）",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
	})

	ReplenishmentConfirmedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookstore",
		Name:      "replenishment_confirmed_total",
		Help:      "进货订单确认总数",
	})
}

// ObserveCheckout 上报一次结算的结果与耗时
// 未Init时为空操作,用例层无需关心指标是否已注册
func ObserveCheckout(result string, start time.Time) {
	if !initialized {
		return
	}
	CheckoutTotal.WithLabelValues(result).Inc()
	CheckoutDuration.Observe(time.Since(start).Seconds())
}

// IncReplenishmentConfirmed 上报一次进货确认
func IncReplenishmentConfirmed() {
	if !initialized {
		return
	}
	ReplenishmentConfirmedTotal.Inc()
}

// GinMiddleware 采集HTTP指标的Gin中间件
// path标签使用路由模板（c.FullPath），避免/books/:isbn产生高基数标签
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		HTTPRequestsInProgress.Inc()

		c.Next()

		HTTPRequestsInProgress.Dec()

		path := c.FullPath()
		if path == "" {
			path = "unmatched" // 404等未命中路由的请求
		}

		HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
		).Observe(time.Since(start).Seconds())
	}
}

// Handler 返回/metrics端点的处理器
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

package catalog

import (
	"fmt"

	"github.com/xiebiao/campus-bookstore/internal/domain/catalog"
)

// BookInfo 图书信息DTO
type BookInfo struct {
	ID          uint         `json:"id"`
	ISBN        string       `json:"isbn"`
	Title       string       `json:"title"`
	PubYear     int          `json:"pub_year"`
	Price       int64        `json:"price"`      // 分
	PriceYuan   string       `json:"price_yuan"` // 元(展示用)
	Stock       int          `json:"stock"`
	Threshold   int          `json:"threshold"`
	Category    string       `json:"category"`
	PublisherID uint         `json:"publisher_id"`
	Authors     []AuthorInfo `json:"authors"`
	NeedRestock bool         `json:"need_restock"` // 库存低于补货阈值
}

// AuthorInfo 作者信息DTO
type AuthorInfo struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// PublisherInfo 出版社信息DTO
type PublisherInfo struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// toBookInfo 领域实体 → DTO
func toBookInfo(b *catalog.Book) BookInfo {
	info := BookInfo{
		ID:          b.ID,
		ISBN:        b.ISBN,
		Title:       b.Title,
		PubYear:     b.PubYear,
		Price:       b.Price,
		PriceYuan:   formatPrice(b.Price),
		Stock:       b.Stock,
		Threshold:   b.Threshold,
		Category:    string(b.Category),
		PublisherID: b.PublisherID,
		Authors:     []AuthorInfo{},
		NeedRestock: b.NeedsRestock(),
	}
	for _, a := range b.Authors {
		info.Authors = append(info.Authors, AuthorInfo{ID: a.ID, Name: a.Name})
	}
	return info
}

// toAuthorInfo 领域实体 → DTO
func toAuthorInfo(a *catalog.Author) AuthorInfo {
	return AuthorInfo{ID: a.ID, Name: a.Name}
}

// toPublisherInfo 领域实体 → DTO
func toPublisherInfo(p *catalog.Publisher) PublisherInfo {
	return PublisherInfo{
		ID:      p.ID,
		Name:    p.Name,
		Address: p.Address,
		Phone:   p.Phone,
	}
}

// formatPrice 格式化价格(分→元)
func formatPrice(priceFen int64) string {
	return fmt.Sprintf("%.2f", float64(priceFen)/100.0)
}

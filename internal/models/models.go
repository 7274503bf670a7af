// Package models содержит структуры данных приложения:
// пользователей, сессии и записи каталога товаров.
package models

import "time"

// User представляет запись в таблице users.
// Пароль хранится в открытом виде — унаследованное свойство исходной схемы,
// пользователи заводятся только сидом миграций.
type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Session представляет серверную запись о выданном токене.
// Удаление строки делает подписанный токен недействительным
// независимо от его собственного срока жизни.
type Session struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductGroup представляет группу товаров.
type ProductGroup struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Product представляет товар внутри группы.
// GroupName заполняется только при выборках с JOIN на product_groups.
type Product struct {
	ID             int     `json:"id"`
	ProductGroupID int     `json:"product_group_id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	GroupName      string  `json:"group_name,omitempty"`
}

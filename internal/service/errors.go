package service

import "errors"

// 业务错误
var (
	// ErrProductNotFound 加购引用的商品不存在
	ErrProductNotFound = errors.New("商品不存在")
	// ErrCategoryRequired 商品列表查询缺少分类
	ErrCategoryRequired = errors.New("分类不能为空")
)

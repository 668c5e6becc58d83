//go:build tools

// Пакет tools фиксирует инструменты генерации gRPC-кода магазина.
// Генераторы protoc ставятся вручную:
//
//	go install google.golang.org/protobuf/cmd/protoc-gen-go@latest
//	go install google.golang.org/grpc/cmd/protoc-gen-go-grpc@latest
//
// Перегенерация proto/shop/v1 из корня репозитория:
//
//	protoc --go_out=. --go_opt=paths=source_relative \
//	    --go-grpc_out=. --go-grpc_opt=paths=source_relative \
//	    proto/shop/v1/shop.proto
package tools

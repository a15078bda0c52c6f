package menu

import "github.com/asavelyev/campus-canteen/internal/types/menu"

// Catalog is the static canteen menu. Dishes are keyed by a short id with a
// meal-type prefix (b/l/d).
var Catalog = []menu.Item{
	{ID: "b1", Name: "Masala Dosa", Description: "Crispy rice crepe filled with spiced potato filling", Price: 60, Image: "https://images.unsplash.com/photo-1630383249896-424e482df921?w=400&h=300&fit=crop", Category: "South Indian", MealType: menu.MealBreakfast, IsVeg: true, Rating: 4.5, PrepTime: "15 min"},
	{ID: "b2", Name: "Idli Sambar", Description: "Steamed rice cakes served with sambar and chutney", Price: 40, Image: "https://images.unsplash.com/photo-1589301773859-8bb11e0b9a82?w=400&h=300&fit=crop", Category: "South Indian", MealType: menu.MealBreakfast, IsVeg: true, Rating: 4.3, PrepTime: "10 min"},
	{ID: "b3", Name: "Poha", Description: "Flattened rice with peanuts, curry leaves and spices", Price: 35, Image: "https://images.unsplash.com/photo-1606491956689-2ea866880c84?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealBreakfast, IsVeg: true, Rating: 4.2, PrepTime: "12 min"},
	{ID: "b4", Name: "Aloo Paratha", Description: "Stuffed flatbread with spiced potato filling", Price: 50, Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealBreakfast, IsVeg: true, Rating: 4.6, PrepTime: "15 min"},
	{ID: "b5", Name: "Bread Omelette", Description: "Fluffy omelette with toasted bread slices", Price: 45, Image: "https://images.unsplash.com/photo-1525351484163-7529414344d8?w=400&h=300&fit=crop", Category: "Continental", MealType: menu.MealBreakfast, IsVeg: false, Rating: 4.1, PrepTime: "10 min"},
	{ID: "b6", Name: "Upma", Description: "Savory semolina porridge with vegetables", Price: 35, Image: "https://images.unsplash.com/photo-1567337710282-00832b415979?w=400&h=300&fit=crop", Category: "South Indian", MealType: menu.MealBreakfast, IsVeg: true, Rating: 4.0, PrepTime: "12 min"},
	{ID: "l1", Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato-based gravy", Price: 120, Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealLunch, IsVeg: true, Rating: 4.7, PrepTime: "20 min"},
	{ID: "l2", Name: "Chicken Biryani", Description: "Aromatic basmati rice with tender chicken pieces", Price: 150, Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400&h=300&fit=crop", Category: "Biryani", MealType: menu.MealLunch, IsVeg: false, Rating: 4.8, PrepTime: "25 min"},
	{ID: "l3", Name: "Dal Tadka", Description: "Yellow lentils tempered with aromatic spices", Price: 80, Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealLunch, IsVeg: true, Rating: 4.4, PrepTime: "15 min"},
	{ID: "l4", Name: "Veg Thali", Description: "Complete meal with dal, sabzi, roti, rice and sweet", Price: 110, Image: "https://images.unsplash.com/photo-1567337710282-00832b415979?w=400&h=300&fit=crop", Category: "Thali", MealType: menu.MealLunch, IsVeg: true, Rating: 4.6, PrepTime: "20 min"},
	{ID: "l5", Name: "Chole Bhature", Description: "Spicy chickpea curry with deep-fried bread", Price: 90, Image: "https://images.unsplash.com/photo-1626132647523-66f5bf380027?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealLunch, IsVeg: true, Rating: 4.5, PrepTime: "18 min"},
	{ID: "l6", Name: "Fried Rice", Description: "Stir-fried rice with vegetables and soy sauce", Price: 100, Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=300&fit=crop", Category: "Chinese", MealType: menu.MealLunch, IsVeg: true, Rating: 4.3, PrepTime: "15 min"},
	{ID: "l7", Name: "Rajma Chawal", Description: "Red kidney bean curry served with steamed rice", Price: 85, Image: "https://images.unsplash.com/photo-1585937421612-70a008356fbe?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealLunch, IsVeg: true, Rating: 4.4, PrepTime: "18 min"},
	{ID: "l8", Name: "Egg Curry", Description: "Boiled eggs in spiced tomato gravy", Price: 95, Image: "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealLunch, IsVeg: false, Rating: 4.2, PrepTime: "20 min"},
	{ID: "d1", Name: "Butter Chicken", Description: "Tender chicken in creamy tomato-butter sauce", Price: 140, Image: "https://images.unsplash.com/photo-1588166524941-3bf61a9c41db?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealDinner, IsVeg: false, Rating: 4.9, PrepTime: "25 min"},
	{ID: "d2", Name: "Veg Biryani", Description: "Fragrant rice with mixed vegetables and spices", Price: 120, Image: "https://images.unsplash.com/photo-1563379091339-03b21ab4a4f8?w=400&h=300&fit=crop", Category: "Biryani", MealType: menu.MealDinner, IsVeg: true, Rating: 4.5, PrepTime: "22 min"},
	{ID: "d3", Name: "Kadai Paneer", Description: "Cottage cheese cooked with bell peppers in kadai spices", Price: 130, Image: "https://images.unsplash.com/photo-1631452180519-c014fe946bc7?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealDinner, IsVeg: true, Rating: 4.6, PrepTime: "20 min"},
	{ID: "d4", Name: "Naan with Dal Makhani", Description: "Butter naan served with creamy black lentils", Price: 110, Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?w=400&h=300&fit=crop", Category: "North Indian", MealType: menu.MealDinner, IsVeg: true, Rating: 4.7, PrepTime: "18 min"},
	{ID: "d5", Name: "Chicken Fried Rice", Description: "Fried rice with chicken pieces and vegetables", Price: 125, Image: "https://images.unsplash.com/photo-1603133872878-684f208fb84b?w=400&h=300&fit=crop", Category: "Chinese", MealType: menu.MealDinner, IsVeg: false, Rating: 4.4, PrepTime: "18 min"},
}
